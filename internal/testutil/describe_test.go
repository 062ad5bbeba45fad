package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	out := Describe(Registry())

	assert.Contains(t, out, "TestEnumBoolean (bool)\n  Instance = True\n")
	assert.Contains(t, out, "TestEnumInt32 (int32)\n  Instance = 1\n  Instance2 = 2\n")
	assert.Contains(t, out, "TestEnumDouble (double)\n  Instance = 1.2\n")
}
