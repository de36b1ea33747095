package cmd

import (
	"context"
	"io"
	"os"

	mdwerror "github.com/msto63/smpl/foundation/core/error"
	"github.com/msto63/smpl/foundation/smpl"
	"github.com/msto63/smpl/internal/compiler"
)

// stdinName is the argument that selects standard input
const stdinName = "-"

// sourceArg returns the file argument, DefaultSourceFile when none is given
func sourceArg(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return compiler.DefaultSourceFile
	}
	return args[0]
}

// compileArg compiles the file named by args, or standard input for "-"
func compileArg(ctx context.Context, svc *compiler.Service, in io.Reader, args []string) (*compiler.Result, error) {
	name := sourceArg(args)
	if name == stdinName {
		return svc.CompileReader(ctx, "<stdin>", in)
	}
	return svc.CompileFile(ctx, name)
}

// readArg reads the file named by args, or standard input for "-". At most
// limit+1 bytes are read from standard input so the engine can still report
// oversized source; a limit of zero selects smpl.DefaultMaxSourceLength.
func readArg(in io.Reader, args []string, limit int) (name, source string, err error) {
	name = sourceArg(args)
	if limit <= 0 {
		limit = smpl.DefaultMaxSourceLength
	}

	var data []byte
	if name == stdinName {
		name = "<stdin>"
		data, err = io.ReadAll(io.LimitReader(in, int64(limit)+1))
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return name, "", mdwerror.Wrap(err, "failed to read source").
			WithCode(code).
			WithDetail("path", name)
	}
	return name, string(data), nil
}
