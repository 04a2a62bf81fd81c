package req

import (
	"fmt"
	"net/http"
	"reflect"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"numclass/pkg/errcodes"
)

const queryTag = "query"

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// ReadQuery fills string and *string fields of dest tagged with `query:"name"`
// from the URL query and validates the result. A *string field stays nil when
// the parameter is absent.
func ReadQuery(r *http.Request, dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a pointer to struct, got %T", dest)
	}

	query := r.URL.Query()
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		name, ok := rt.Field(i).Tag.Lookup(queryTag)
		if !ok || !query.Has(name) {
			continue
		}

		raw := query.Get(name)
		field := rv.Field(i)

		switch {
		case field.Kind() == reflect.String:
			field.SetString(raw)
		case field.Kind() == reflect.Pointer && field.Type().Elem().Kind() == reflect.String:
			field.Set(reflect.ValueOf(&raw))
		default:
			return fmt.Errorf("unsupported query field %s of kind %s", rt.Field(i).Name, field.Kind())
		}
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
