package extension_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/replbridge/extension"
	"github.com/viant/replbridge/model/types"
)

type echoInput struct {
	Text string
}

type echoOutput struct {
	Text string
}

type echoService struct{}

func (s *echoService) Name() string { return "test/echo" }

func (s *echoService) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:   "echo",
			Input:  reflect.TypeOf(&echoInput{}),
			Output: reflect.TypeOf(&echoOutput{}),
		},
	}
}

func (s *echoService) Method(name string) (types.Executable, error) {
	if strings.ToLower(name) != "echo" {
		return nil, types.NewMethodNotFoundError(name)
	}
	return func(ctx context.Context, in, out interface{}) error {
		input, ok := in.(*echoInput)
		if !ok {
			return types.NewInvalidInputError(in)
		}
		output, ok := out.(*echoOutput)
		if !ok {
			return types.NewInvalidOutputError(out)
		}
		output.Text = input.Text
		return nil
	}, nil
}

func TestActions_RegisterAndDispatch(t *testing.T) {
	actions := extension.NewActions()
	actions.Register(&echoService{})

	service := actions.Lookup("test/echo")
	if !assert.NotNil(t, service) {
		return
	}
	signature := service.Methods().Lookup("echo")
	assert.NotNil(t, signature)

	method, err := service.Method("ECHO")
	assert.NoError(t, err)

	output := &echoOutput{}
	err = method(context.Background(), &echoInput{Text: "hi"}, output)
	assert.NoError(t, err)
	assert.Equal(t, "hi", output.Text)

	_, err = service.Method("nope")
	assert.Error(t, err)
	assert.Nil(t, actions.Lookup("test/missing"))
}
