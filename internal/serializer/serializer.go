package serializer

import (
	"context"
	"fmt"
	"io"
	"reflect"
)

var (
	serializers           = make(Serializers)
	contextualSerializers = make(ContextualSerializers)
)

type ContextualSerializers map[reflect.Type]ContextualSerializer

// ContextualSerializer extends the base Serializer interface to accept a context.
type ContextualSerializer interface {
	// DecodeWithContext decodes the input into the output, using context for scope or auth info.
	DecodeWithContext(ctx context.Context, input []byte, output any) error

	// EncodeWithContext encodes the input into the output, using context for scope or auth info.
	EncodeWithContext(ctx context.Context, input any, output io.ByteWriter) error
}

type Serializers map[reflect.Type]Serializer

// Serializer is the interface that wraps the basic serialization methods
type Serializer interface {

	// Decode decodes the input into the output
	Decode(input []byte, output any) error

	// Encode encodes the input into the output
	Encode(input any, output io.ByteWriter) error
}

// Register registers a model and its serializer
func Register(model any, serializer Serializer) {
	serializers[reflect.TypeOf(model)] = serializer
}

func Encode(model any, output io.ByteWriter) error {
	if serializer, ok := serializers[reflect.TypeOf(model)]; ok {
		return serializer.Encode(model, output)
	}

	return fmt.Errorf("no serializer found for model %T", model)
}

func Decode(model any, input []byte) error {
	if serializer, ok := serializers[reflect.TypeOf(model)]; ok {
		return serializer.Decode(input, model)
	}

	return fmt.Errorf("no serializer found for model %T", model)
}

// RegisterContextual registers a model with a context-aware serializer.
func RegisterContextual(model any, serializer ContextualSerializer) {
	contextualSerializers[reflect.TypeOf(model)] = serializer
}

// EncodeWithContext attempts to find a context-aware serializer first.
// If none is found, it falls back to a basic serializer (optional).
func EncodeWithContext(ctx context.Context, model any, output io.ByteWriter) error {
	t := reflect.TypeOf(model)
	if s, ok := contextualSerializers[t]; ok {
		return s.EncodeWithContext(ctx, model, output)
	}

	if s, ok := serializers[t]; ok {
		return s.Encode(model, output)
	}

	return fmt.Errorf("no serializer found for model %T", model)
}

// DecodeWithContext attempts to find a context-aware serializer first.
func DecodeWithContext(ctx context.Context, model any, input []byte) error {
	t := reflect.TypeOf(model)
	if s, ok := contextualSerializers[t]; ok {
		return s.DecodeWithContext(ctx, input, model)
	}

	if s, ok := serializers[t]; ok {
		return s.Decode(input, model)
	}

	return fmt.Errorf("no serializer found for model %T", model)
}

// Projector is implemented by contextual serializers that can return the
// viewer-facing value instead of writing it, so handlers can embed it in a
// response envelope.
type Projector interface {
	ProjectWithContext(ctx context.Context, input any) (any, error)
}

// Project returns the viewer-facing form of model. Types without a
// projecting serializer are returned unchanged.
func Project(ctx context.Context, model any) (any, error) {
	if s, ok := contextualSerializers[reflect.TypeOf(model)]; ok {
		if p, ok := s.(Projector); ok {
			return p.ProjectWithContext(ctx, model)
		}
	}
	return model, nil
}
