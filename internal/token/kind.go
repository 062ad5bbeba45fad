package token

import "fmt"

// Kind is the kind of the current token.
type Kind int

const (
	None Kind = iota
	Null
	True
	False
	Number
	String
	PropertyName
	StartObject
	StartArray
)

var kindNames = [...]string{
	None:         "None",
	Null:         "Null",
	True:         "True",
	False:        "False",
	Number:       "Number",
	String:       "String",
	PropertyName: "PropertyName",
	StartObject:  "StartObject",
	StartArray:   "StartArray",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsAbsent reports whether the token carries no value.
func (k Kind) IsAbsent() bool {
	return k == None || k == Null
}
