package timelib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naleksiev/fin"
	"github.com/naleksiev/fin/mod/stdops"
	"github.com/naleksiev/fin/mod/timelib"
)

func TestTimelib_ClockCallsCompile(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))
	require.NoError(t, timelib.Register(ctx))

	src := `float Main() {
		float a = time.Clock();
		float b = time.Clock();
		return b - a;
	}`
	_, err := fin.CompileModule(ctx, src)
	require.NoError(t, err)
}

func TestTimelib_RegisterBindsUnderTimeModuleName(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, timelib.Register(ctx))
	_, err := fin.CompileModule(ctx, `void Main() { float t = time.Clock(); }`)
	require.NoError(t, err)
}
