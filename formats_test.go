package boon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPeriod(t *testing.T) {
	valid := []string{
		"1963-06-19T08:30:06Z/1963-06-20T08:30:06Z",
		"1963-06-19T08:30:06Z/P4DT12H30M5S",
		"P4DT12H30M5S/1963-06-19T08:30:06Z",
	}
	for _, s := range valid {
		assert.True(t, IsPeriod(s), s)
	}

	invalid := []string{
		"P4DT12H30M5S/P4DT12H30M5S", // exactly one side may be a duration
		"1963-06-19T08:30:06Z",      // single value
		"1963-06-19T08:30:06Z/P1D/P1D",
		"",
	}
	for _, s := range invalid {
		assert.False(t, IsPeriod(s), s)
	}

	// non-string instances never fail
	assert.True(t, IsPeriod(12))
}

func TestIsDuration(t *testing.T) {
	valid := []string{"P1Y", "P1Y2M3D", "PT1H30M", "P1DT12H", "P3W", "PT5S"}
	for _, s := range valid {
		assert.True(t, IsDuration(s), s)
	}
	invalid := []string{"", "P", "PT", "1Y", "P1H", "PT1D", "P1Y1Y", "P1YT"}
	for _, s := range invalid {
		assert.False(t, IsDuration(s), s)
	}
}

func TestIsDateTime(t *testing.T) {
	assert.True(t, IsDateTime("1963-06-19T08:30:06Z"))
	assert.True(t, IsDateTime("1990-12-31T23:59:60Z"), "leap second")
	assert.True(t, IsDateTime("1937-01-01T12:00:27.87+00:20"))
	assert.False(t, IsDateTime("06/19/1963 08:30:06 PST"))
	assert.False(t, IsDateTime("1990-02-31T15:59:59Z"), "invalid day")
}

func TestIsHostname(t *testing.T) {
	assert.True(t, IsHostname("www.example.com"))
	assert.True(t, IsHostname("xn--4gbwdl.xn--wgbh1c"))
	assert.False(t, IsHostname("-starts-with-hyphen.com"))
	assert.False(t, IsHostname("not_valid"))
}

func TestIsIPV4(t *testing.T) {
	assert.True(t, IsIPV4("192.168.0.1"))
	assert.False(t, IsIPV4("256.1.1.1"))
	assert.False(t, IsIPV4("127.0.0.01"), "leading zero")
	assert.False(t, IsIPV4("1.2.3"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("2eb8aa08-aa98-11ea-b4aa-73b441d16380"))
	assert.False(t, IsUUID("2eb8aa08-aa98-11ea-b4aa-73b441d1638"))
	assert.False(t, IsUUID("2eb8aa08aa9811eab4aa73b441d16380"))
}

func TestIsJSONPointer(t *testing.T) {
	assert.True(t, IsJSONPointer(""))
	assert.True(t, IsJSONPointer("/a/b"))
	assert.True(t, IsJSONPointer("/a~0b/c~1d"))
	assert.False(t, IsJSONPointer("a/b"))
	assert.False(t, IsJSONPointer("/a~2b"))
}

func TestIsRelativeJSONPointer(t *testing.T) {
	assert.True(t, IsRelativeJSONPointer("0"))
	assert.True(t, IsRelativeJSONPointer("1/a"))
	assert.True(t, IsRelativeJSONPointer("0#"))
	assert.False(t, IsRelativeJSONPointer("#/a"))
	assert.False(t, IsRelativeJSONPointer("01/a"))
	assert.False(t, IsRelativeJSONPointer(""))
}

func TestIsRegex(t *testing.T) {
	assert.True(t, IsRegex("^a+$"))
	assert.False(t, IsRegex("^(abc]"))
}
