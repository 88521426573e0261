package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotStruct = fmt.Errorf("patchable must be a struct or a pointer to struct")
)

// MakeBsonM turns the non-zero fields of a struct into a selector or updater
// keyed by bson tag. Non-nil pointers are dereferenced, so a pointer to a zero
// value is kept.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.ValueOf(patchable)
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	bsonM := bson.M{}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		switch {
		case tag.Skip || !field.CanInterface():
			continue
		case field.Kind() == reflect.Ptr:
			if !field.IsNil() {
				bsonM[tag.Name] = field.Elem().Interface()
			}
		case !field.IsZero():
			bsonM[tag.Name] = field.Interface()
		}
	}

	return bsonM, nil
}
