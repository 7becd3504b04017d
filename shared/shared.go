package shared

import (
	"context"
	"fmt"
	"neodrive/shared/cache"
	"neodrive/shared/constant"
	"neodrive/shared/failure"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildCacheKey joins the non-empty parts into a single cache key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, constant.CacheKeySeparator)
}

// InvalidateCaches removes every cached entry under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ParseID converts a path identifier into the value stored under _id.
// Hex ObjectIds become primitive.ObjectID; anything else is kept as the raw string.
func ParseID(id string) (any, error) {
	if id == "" {
		return nil, failure.InvalidIdentifier
	}

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid, nil
	}

	return id, nil
}

// FilterByID builds the filter document selecting a single document by identifier.
func FilterByID(id string) (bson.M, error) {
	value, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	return bson.M{constant.FieldID: value}, nil
}

// CanonicalID renders a parsed identifier the same way for every spelling of it.
// ObjectIds become lower-case hex; anything else is formatted as is.
func CanonicalID(value any) string {
	if oid, ok := value.(primitive.ObjectID); ok {
		return oid.Hex()
	}

	return fmt.Sprint(value)
}

// FilterByField builds an equality filter document. Dotted fields match embedded documents.
func FilterByField(field string, value any) bson.M {
	return bson.M{field: value}
}

// NormalizeID rewrites a caller-supplied hex string _id into an ObjectId so FilterByID finds it later.
func NormalizeID(doc map[string]any) {
	raw, ok := doc[constant.FieldID].(string)
	if !ok {
		return
	}

	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		doc[constant.FieldID] = oid
	}
}

// TransformFields converts every bson-tagged field of a struct into a $set document.
// Zero and nil values are kept so that absent fields are explicitly overwritten.
func TransformFields(data any) bson.M {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	typ := val.Type()
	updatedFields := bson.M{}

	for index := range val.NumField() {
		fieldName, _, _ := strings.Cut(typ.Field(index).Tag.Get("bson"), ",")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	return updatedFields
}
