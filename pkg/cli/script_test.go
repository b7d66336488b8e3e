package cli

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript run this test binary as the idgen command.
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"idgen": Execute,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
