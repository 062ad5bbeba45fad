// Package convert bridges smart enum members and their underlying
// primitives for serializers.
//
// ValueConverter and NameConverter implement the read/write contract over
// token.Reader and token.Writer. Value, Name and Map adapt them to
// encoding/json and gopkg.in/yaml.v3 through explicit registration: the
// first type parameter is a Definition whose zero value names the
// enumeration, so no reflection or tag scanning is involved.
//
// Read path for a value token:
//  1. None/Null tokens yield no member (unset). NullAsError turns a Null
//     token into *NullError instead.
//  2. The token is coerced to the enumeration's primitive. Failures are
//     *token.TypeError or *token.FormatError wrapped in *ConversionError.
//  3. The value is looked up. Failures are *enum.NotFoundError wrapped in
//     *ConversionError.
package convert
