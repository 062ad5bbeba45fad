// Package catalog loads enumeration declarations from YAML files or CUE
// sources and builds them into an enum.Registry.
//
// Member values are read through token.Reader implementations and coerced
// with convert.ReadPrimitive, so a declaration file is held to the same
// kind rules as runtime conversion: `value: 1` is not a bool.
//
// YAML layout:
//
//	enums:
//	  - name: TestEnumBoolean
//	    kind: bool
//	    members:
//	      - name: Instance
//	        value: true
//
// CUE layout:
//
//	enum: TestEnumBoolean: {
//		kind: "bool"
//		members: [{name: "Instance", value: true}]
//	}
package catalog
