package id

import (
	"fmt"
	"strings"
)

// Method names an identifier generation method.
type Method string

// Generation methods.
const (
	MethodUUID         Method = "uuid"
	MethodTimestamp    Method = "timestamp"
	MethodAlphanumeric Method = "alphanumeric"
	MethodStructured   Method = "structured"
	MethodHash         Method = "hash"
	MethodShortUUID    Method = "short-uuid"
	MethodComposite    Method = "composite"
	MethodURLSafe      Method = "url-safe"
	MethodULID         Method = "ulid"
)

// MethodInfo describes a Method's inputs and output shape.
type MethodInfo struct {
	Method  Method `json:"method"`
	Inputs  string `json:"inputs"`
	Pattern string `json:"pattern"`
}

var methodInfos = []MethodInfo{
	{MethodUUID, "none", "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"},
	{MethodTimestamp, "none", "<int>-<13 base36 chars>"},
	{MethodAlphanumeric, "length=12", "<length> alphanumeric chars"},
	{MethodStructured, "prefix", "<prefix>-<int>-<6 base36 chars>"},
	{MethodHash, "content", "<12 hex chars>"},
	{MethodShortUUID, "none", "<8 hex chars>"},
	{MethodComposite, "none", "<base36>-<3 base36>-<3 digits>"},
	{MethodURLSafe, "length=16 (bytes)", "base64url, ceil(length*4/3) chars"},
	{MethodULID, "none", "<26 Crockford base32 chars>"},
}

var methodAliases = map[string]Method{
	"nano":      MethodAlphanumeric,
	"nanoid":    MethodAlphanumeric,
	"short":     MethodShortUUID,
	"shortuuid": MethodShortUUID,
	"custom":    MethodComposite,
	"urlsafe":   MethodURLSafe,
}

// Methods returns every method in canonical order.
func Methods() []Method {
	out := make([]Method, len(methodInfos))
	for i, info := range methodInfos {
		out[i] = info.Method
	}
	return out
}

// MethodInfos returns descriptions of every method in canonical order.
func MethodInfos() []MethodInfo {
	out := make([]MethodInfo, len(methodInfos))
	copy(out, methodInfos)
	return out
}

// ParseMethod resolves a method name or alias, ignoring case.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, info := range methodInfos {
		if string(info.Method) == name {
			return info.Method, nil
		}
	}
	if m, ok := methodAliases[name]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
}

// Params carries method inputs for Generate. Zero values select the
// method's default.
type Params struct {
	// Length is the character count for MethodAlphanumeric and the byte
	// count for MethodURLSafe.
	Length int
	// Prefix is used by MethodStructured.
	Prefix string
	// Content is hashed by MethodHash.
	Content string
}

// Generate dispatches to the named method.
func (g *Generator) Generate(m Method, p Params) (string, error) {
	switch m {
	case MethodUUID:
		return g.UUID()
	case MethodTimestamp:
		return g.Timestamp()
	case MethodAlphanumeric:
		if p.Length == 0 {
			p.Length = DefaultAlphanumericLength
		}
		return g.Alphanumeric(p.Length)
	case MethodStructured:
		return g.Structured(p.Prefix)
	case MethodHash:
		return g.Hash(p.Content), nil
	case MethodShortUUID:
		return g.ShortUUID()
	case MethodComposite:
		return g.Composite()
	case MethodURLSafe:
		if p.Length == 0 {
			p.Length = DefaultURLSafeBytes
		}
		return g.URLSafe(p.Length)
	case MethodULID:
		return g.ULID()
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, m)
	}
}

// Generate dispatches to the named method on the default Generator.
func Generate(m Method, p Params) (string, error) { return std.Generate(m, p) }
