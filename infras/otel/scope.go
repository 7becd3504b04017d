package otel

import (
	"fmt"
	"neodrive/shared/failure"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const attributeErrorCode = "error.code"

// Scope is a single span owned by one handler, service, repository or cache call.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError marks the span failed. The status code a Failure would be answered with is kept as an attribute.
func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
	s.span.SetAttributes(attribute.Int(attributeErrorCode, failure.GetCode(err)))
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		kvs = append(kvs, toAttribute(key, value))
	}

	s.span.SetAttributes(kvs...)
}

// toAttribute renders filter documents and identifiers as relaxed extended JSON
// so that ObjectIds show up as {"$oid": ...} instead of byte arrays.
func toAttribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case primitive.ObjectID:
		return attribute.String(key, val.Hex())
	case bson.M:
		return documentAttribute(key, val)
	case map[string]any:
		return documentAttribute(key, bson.M(val))
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}

func documentAttribute(key string, doc bson.M) attribute.KeyValue {
	raw, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return attribute.String(key, fmt.Sprintf("%v", doc))
	}

	return attribute.String(key, string(raw))
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
