// Credit to https://github.com/santhosh-tekuri/jsonschema
package boon

import (
	"net"
	"net/mail"
	gourl "net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Formats is a registry of functions, which know how to validate
// a specific format.
//
// New formats can be registered by adding to this map. Key is format name,
// value is function that knows how to validate that format. Validators
// never fail for instances of types the format does not apply to.
var Formats = map[string]func(any) bool{
	"date-time":             IsDateTime,
	"date":                  IsDate,
	"time":                  IsTime,
	"duration":              IsDuration,
	"period":                IsPeriod,
	"hostname":              IsHostname,
	"idn-hostname":          IsHostname,
	"email":                 IsEmail,
	"idn-email":             IsEmail,
	"ip-address":            IsIPV4,
	"ipv4":                  IsIPV4,
	"ipv6":                  IsIPV6,
	"uri":                   IsURI,
	"iri":                   IsURI,
	"uri-reference":         IsURIReference,
	"uriref":                IsURIReference,
	"iri-reference":         IsURIReference,
	"uri-template":          IsURITemplate,
	"json-pointer":          IsJSONPointer,
	"relative-json-pointer": IsRelativeJSONPointer,
	"uuid":                  IsUUID,
	"regex":                 IsRegex,
	"unknown":               func(any) bool { return true },
}

// IsDateTime tells whether given string is a valid date representation
// as defined by RFC 3339, section 5.6.
func IsDateTime(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if len(s) < 20 { // yyyy-mm-ddThh:mm:ssZ
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return IsDate(s[:10]) && IsTime(s[11:])
}

// IsDate tells whether given string is a valid full-date production
// as defined by RFC 3339, section 5.6.
func IsDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsTime tells whether given string is a valid full-time production
// as defined by RFC 3339, section 5.6.
func IsTime(v any) bool {
	str, ok := v.(string)
	if !ok {
		return true
	}

	// golang time package does not support leap seconds, so parse manually

	// hh:mm:ss
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	isInRange := func(str string, min, max int) (int, bool) {
		n, err := strconv.Atoi(str)
		if err != nil {
			return 0, false
		}
		if n < min || n > max {
			return 0, false
		}
		return n, true
	}
	var h, m, s int
	var ok2 bool
	if h, ok2 = isInRange(str[0:2], 0, 23); !ok2 {
		return false
	}
	if m, ok2 = isInRange(str[3:5], 0, 59); !ok2 {
		return false
	}
	if s, ok2 = isInRange(str[6:8], 0, 60); !ok2 {
		return false
	}
	str = str[8:]

	// parse secfrac if present
	if strings.HasPrefix(str, ".") {
		numDigits := 0
		str = str[1:]
		for len(str) > 0 && str[0] >= '0' && str[0] <= '9' {
			numDigits++
			str = str[1:]
		}
		if numDigits == 0 {
			return false
		}
	}

	// parse time-offset
	if len(str) == 0 {
		return false
	}
	var offsetSign int
	switch str[0] {
	case 'z', 'Z':
		if len(str) != 1 {
			return false
		}
		if s == 60 { // leap second must land on 23:59:60 utc
			return h == 23 && m == 59
		}
		return true
	case '+':
		offsetSign = -1
	case '-':
		offsetSign = +1
	default:
		return false
	}

	// +hh:mm
	if len(str) != 6 || str[3] != ':' {
		return false
	}
	var zh, zm int
	if zh, ok2 = isInRange(str[1:3], 0, 23); !ok2 {
		return false
	}
	if zm, ok2 = isInRange(str[4:6], 0, 59); !ok2 {
		return false
	}
	if s == 60 {
		// apply the offset and check for 23:59:60 utc
		utcMinutes := h*60 + m + offsetSign*(zh*60+zm)
		utcMinutes = ((utcMinutes % 1440) + 1440) % 1440
		return utcMinutes == 23*60+59
	}
	return true
}

// IsDuration tells whether given string is a valid duration as defined
// by RFC 3339, appendix A (ISO 8601 durations).
func IsDuration(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if len(s) == 0 || s[0] != 'P' {
		return false
	}
	s = s[1:]
	parseUnits := func(units string) bool {
		seen := -1
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			digits := 0
			for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
				digits++
				s = s[1:]
			}
			if len(s) == 0 {
				return false
			}
			unit := strings.IndexByte(units, s[0])
			if unit == -1 || unit <= seen {
				return false
			}
			seen = unit
			s = s[1:]
		}
		return seen != -1
	}
	if strings.HasPrefix(s, "T") {
		s = s[1:]
		return parseUnits("HMS") && len(s) == 0
	}
	if len(s) > 0 && s[len(s)-1] == 'W' {
		weeks := s[:len(s)-1]
		if weeks == "" {
			return false
		}
		for i := 0; i < len(weeks); i++ {
			if weeks[i] < '0' || weeks[i] > '9' {
				return false
			}
		}
		return true
	}
	if !parseUnits("YMD") {
		return false
	}
	if strings.HasPrefix(s, "T") {
		s = s[1:]
		return parseUnits("HMS") && len(s) == 0
	}
	return len(s) == 0
}

// IsPeriod tells whether given string is a valid period as defined by
// RFC 3339, appendix A: start/end, start/duration or duration/end.
// Exactly one side may be a duration.
func IsPeriod(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	slash := strings.IndexByte(s, '/')
	if slash == -1 {
		return false
	}
	start, end := s[:slash], s[slash+1:]
	if IsDateTime(start) {
		return IsDateTime(end) || IsDuration(end)
	}
	return IsDuration(start) && IsDateTime(end)
}

// IsHostname tells whether given string is a valid representation
// for an Internet host name, as defined by RFC 1034 section 3.1 and
// RFC 1123 section 2.1.
func IsHostname(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	s = strings.TrimSuffix(s, ".")
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) < 1 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c > 127
			if !valid {
				return false
			}
		}
	}
	return true
}

// IsEmail tells whether given string is a valid Internet email address
// as defined by RFC 5322, section 3.4.1.
func IsEmail(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	// entire string must be the address, without display name
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		return net.ParseIP(domain[1:len(domain)-1]) != nil
	}
	return IsHostname(domain)
}

// IsIPV4 tells whether given string is a valid representation of an IPv4
// address according to the "dotted-quad" ABNF syntax.
func IsIPV4(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		n, err := strconv.Atoi(group)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if len(group) > 1 && group[0] == '0' {
			return false // leading zeros are rejected
		}
	}
	return true
}

// IsIPV6 tells whether given string is a valid representation of an IPv6
// address as defined in RFC 2373, section 2.2.
func IsIPV6(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

// IsURI tells whether given string is a valid URI with a scheme, as
// defined in RFC 3986.
func IsURI(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	u, err := gourl.Parse(s)
	return err == nil && u.IsAbs()
}

// IsURIReference tells whether given string is a valid URI Reference
// (either a URI or a relative-reference), as defined in RFC 3986.
func IsURIReference(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := gourl.Parse(s)
	return err == nil && !strings.Contains(s, `\`)
}

// IsURITemplate tells whether given string is a valid URI Template as
// defined by RFC 6570.
func IsURITemplate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	u, err := gourl.Parse(s)
	if err != nil {
		return false
	}
	for _, item := range strings.Split(u.RawPath, "/") {
		depth := 0
		for _, ch := range item {
			switch ch {
			case '{':
				depth++
				if depth != 1 {
					return false
				}
			case '}':
				depth--
				if depth != 0 {
					return false
				}
			}
		}
		if depth != 0 {
			return false
		}
	}
	return true
}

// IsJSONPointer tells whether given string is a valid JSON Pointer as
// defined by RFC 6901, section 5.
func IsJSONPointer(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	return validateJSONPointer(s) == nil
}

// IsRelativeJSONPointer tells whether given string is a valid Relative
// JSON Pointer.
func IsRelativeJSONPointer(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if s == "" {
		return false
	}
	leadingZero := s[0] == '0'
	digits := 0
	for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		digits++
		s = s[1:]
	}
	if digits == 0 || (digits > 1 && leadingZero) {
		return false
	}
	return s == "#" || validateJSONPointer(s) == nil
}

// IsUUID tells whether given string is a valid uuid format as specified
// in RFC 4122.
func IsUUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	hexGroups := []int{8, 4, 4, 4, 12}
	groups := strings.Split(s, "-")
	if len(groups) != len(hexGroups) {
		return false
	}
	for i, group := range groups {
		if len(group) != hexGroups[i] {
			return false
		}
		for _, c := range group {
			hex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !hex {
				return false
			}
		}
	}
	return true
}

// IsRegex tells whether given string is a valid regular expression for
// the default engine.
func IsRegex(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := regexp.Compile(s)
	return err == nil
}
