package testutil

import "github.com/roach88/smartenum/internal/enum"

// Fixture enumerations, one per supported primitive kind. Each marker
// type (TestEnumBoolean, ...) registers its enumeration with the convert
// adapters.
var (
	testEnumBoolean = enum.MustNew("TestEnumBoolean", enum.D("Instance", true))
	testEnumByte    = enum.MustNew("TestEnumByte", enum.D("Instance", uint8(1)))
	testEnumSByte   = enum.MustNew("TestEnumSByte", enum.D("Instance", int8(1)))
	testEnumInt16   = enum.MustNew("TestEnumInt16", enum.D("Instance", int16(1)))
	testEnumInt32   = enum.MustNew("TestEnumInt32",
		enum.D("Instance", int32(1)),
		enum.D("Instance2", int32(2)),
	)
	testEnumInt64  = enum.MustNew("TestEnumInt64", enum.D("Instance", int64(1)))
	testEnumDouble = enum.MustNew("TestEnumDouble", enum.D("Instance", 1.2))
	testEnumString = enum.MustNew("TestEnumString",
		enum.D("Instance", "1.5"),
		enum.D("Instance2", "2.5"),
	)
)

// Singletons.
var (
	BooleanInstance = testEnumBoolean.MustName("Instance")
	ByteInstance    = testEnumByte.MustName("Instance")
	SByteInstance   = testEnumSByte.MustName("Instance")
	Int16Instance   = testEnumInt16.MustName("Instance")
	Int32Instance   = testEnumInt32.MustName("Instance")
	Int32Instance2  = testEnumInt32.MustName("Instance2")
	Int64Instance   = testEnumInt64.MustName("Instance")
	DoubleInstance  = testEnumDouble.MustName("Instance")
	StringInstance  = testEnumString.MustName("Instance")
	StringInstance2 = testEnumString.MustName("Instance2")
)

type (
	TestEnumBoolean struct{}
	TestEnumByte    struct{}
	TestEnumSByte   struct{}
	TestEnumInt16   struct{}
	TestEnumInt32   struct{}
	TestEnumInt64   struct{}
	TestEnumDouble  struct{}
	TestEnumString  struct{}
)

func (TestEnumBoolean) Enum() *enum.Type[bool]   { return testEnumBoolean }
func (TestEnumByte) Enum() *enum.Type[uint8]     { return testEnumByte }
func (TestEnumSByte) Enum() *enum.Type[int8]     { return testEnumSByte }
func (TestEnumInt16) Enum() *enum.Type[int16]    { return testEnumInt16 }
func (TestEnumInt32) Enum() *enum.Type[int32]    { return testEnumInt32 }
func (TestEnumInt64) Enum() *enum.Type[int64]    { return testEnumInt64 }
func (TestEnumDouble) Enum() *enum.Type[float64] { return testEnumDouble }
func (TestEnumString) Enum() *enum.Type[string]  { return testEnumString }

// Registry returns a new registry holding every fixture enumeration.
func Registry() *enum.Registry {
	reg := enum.NewRegistry()
	reg.MustRegister(
		testEnumBoolean,
		testEnumByte,
		testEnumSByte,
		testEnumInt16,
		testEnumInt32,
		testEnumInt64,
		testEnumDouble,
		testEnumString,
	)
	return reg
}
