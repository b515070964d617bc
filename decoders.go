package responsez

import (
	"image"

	"golang.org/x/text/encoding"
)

// MapImage creates an operator that decodes each response body into an
// image.Image. Bodies that are not PNG, JPEG, GIF, BMP, TIFF or WebP fail
// with *ImageDecodeError.
//
// Example:
//
//	avatars := responsez.MapImage().Process(ctx, responses)
//	for result := range avatars {
//		if result.IsSuccess() {
//			fmt.Println(result.Value().Bounds())
//		}
//	}
func MapImage() *Operator[image.Image] {
	return NewOperator("map-image", Response.MapImage)
}

// MapJSON creates an operator that parses each response body as JSON.
// Malformed bodies fail with *JSONDecodeError.
func MapJSON() *Operator[any] {
	return NewOperator("map-json", Response.MapJSON)
}

// MapJSONInto creates an operator that decodes each response body into T.
//
// Example:
//
//	type User struct {
//		ID   int    `json:"id"`
//		Name string `json:"name"`
//	}
//
//	users := responsez.MapJSONInto[User]().Process(ctx, responses)
func MapJSONInto[T any]() *Operator[T] {
	return NewOperator("map-json", DecodeJSON[T])
}

// MapString creates an operator that converts each response body to a
// string. Bodies that are not valid UTF-8 fail with *StringDecodeError.
func MapString() *Operator[string] {
	return NewOperator("map-string", Response.MapString)
}

// MapStringEncoding creates an operator that decodes each response body
// from enc, for services that answer in a legacy charset.
//
// Example:
//
//	latin1 := responsez.MapStringEncoding(charmap.ISO8859_1)
func MapStringEncoding(enc encoding.Encoding) *Operator[string] {
	return NewOperator("map-string", func(r Response) (string, error) {
		return r.MapStringEncoding(enc)
	})
}
