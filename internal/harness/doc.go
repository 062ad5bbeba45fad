// Package harness runs conversion scenarios against an enumeration
// catalog.
//
// A scenario lists read and write steps, each with the outcome the value
// converter must produce. Results carry a trace of every step, which can
// be compared against a golden file.
//
// # Scenario Format
//
//	name: int32_lookups
//	description: "Int32 values resolve to their singletons"
//	catalog: ../catalog/enums.yaml   # relative to the scenario file
//	null_policy: unset               # or "error"
//	steps:
//	  - enum: TestEnumInt32
//	    read: 2                      # a YAML token
//	    expect: { member: Instance2 }
//	  - enum: TestEnumInt32
//	    read_json: "5"               # a JSON token
//	    expect:
//	      error: not_found
//	      message: "Error converting value '5' to a smart enum."
//	      cause: "No TestEnumInt32 with Value 5 found."
//	  - enum: TestEnumInt32
//	    read_key: "1"                # an object key
//	    expect: { member: Instance }
//	  - enum: TestEnumString
//	    write: Instance              # member name
//	    expect: { token: '"1.5"' }
//	  - enum: TestEnumString
//	    write_key: Instance
//	    expect: { token: "1.5" }
//
// # Error Kinds
//
//   - not_found: no member has the value or name
//   - token_type: the token kind cannot be coerced to the enumeration's kind
//   - token_format: the token text does not fit the kind (overflow, bad key)
//   - null: a null token under null_policy: error
//   - unknown_enum: the enumeration is not in the catalog
package harness
