package repl

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/replbridge/model/types"
)

const Name = "interactive/session"

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "executeFile",
			Description: "Executes a file through the interpreter in the file's terminal, changing working directory and drive first when settings ask for it.",
			Input:       reflect.TypeOf(&ExecuteFileInput{}),
			Output:      reflect.TypeOf(&Output{}),
		},
		{
			Name:        "executeCode",
			Description: "Pipes source text to the resource's interactive interpreter session, starting the session first when needed. Blank text is ignored.",
			Input:       reflect.TypeOf(&ExecuteCodeInput{}),
			Output:      reflect.TypeOf(&Output{}),
		},
		{
			Name:        "initializeSession",
			Description: "Starts the interpreter session for a resource ahead of use; a second call for the same resource reuses the running session.",
			Input:       reflect.TypeOf(&InitializeSessionInput{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

func (s *Service) executeFile(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ExecuteFileInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if err := s.ExecuteFile(ctx, input.Path); err != nil {
		return err
	}
	output.Dispatched = true
	output.ResourceKey = input.Path
	return nil
}

func (s *Service) executeCode(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ExecuteCodeInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if err := s.ExecuteCode(ctx, input.Code, input.ResourceKey); err != nil {
		return err
	}
	output.Dispatched = strings.TrimSpace(input.Code) != ""
	output.ResourceKey = input.ResourceKey
	return nil
}

func (s *Service) initializeSession(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*InitializeSessionInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if err := s.InitializeSession(ctx, input.ResourceKey); err != nil {
		return err
	}
	output.Dispatched = true
	output.ResourceKey = input.ResourceKey
	return nil
}

// Method returns method by Name
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "executefile":
		return s.executeFile, nil
	case "executecode":
		return s.executeCode, nil
	case "initializesession":
		return s.initializeSession, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}
