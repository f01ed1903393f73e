package ontology

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// HashFunc computes the digest ontology.Mint truncates to 8 hex chars.
// It is pluggable per spec §4.9; DefaultHash (SHA-256) is used unless a
// caller explicitly substitutes WeakHash for an environment without a
// native cryptographic hash.
type HashFunc func(input string) string

// DefaultHash is the reference HashFunc: SHA-256 over the input,
// hex-encoded. Mirrors the teacher's fileHash in goreason.go, which
// also reaches for crypto/sha256 for content-addressed identifiers.
func DefaultHash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// WeakHash is the deployment-environment fallback spec §4.9 and §9
// document: a deterministic 64-hex-character string built from two
// 32-bit FNV-1a-style string hashes, acceptable only when the pipeline
// runs somewhere without a native SHA-256 implementation. It is never
// the default; callers must opt in explicitly via MintOptions.Hash.
func WeakHash(input string) string {
	var h1, h2 uint32 = 2166136261, 84696351
	for i := 0; i < len(input); i++ {
		c := uint32(input[i])
		h1 = (h1 ^ c) * 16777619
		h2 = (h2 + c) * 1000003
		h2 ^= h2 >> 13
	}
	return fmt.Sprintf("%08x%08x%08x%08x%08x%08x%08x%08x", h1, h2, h1^h2, h1+h2, h1*31, h2*31, h1^0xA5A5A5A5, h2^0x5A5A5A5A)
}

// MintOptions configures Mint. The zero value uses DefaultHash.
type MintOptions struct {
	Hash HashFunc
}

// Mint forms an instance IRI `inst:<label>_<hash>` per spec §4.9: hash
// is the first 8 hex characters of Hash(text|spanOffset|typeTag|reading),
// where reading is optional (empty string when minting a default-reading
// node). label is the sanitized, whitespace-collapsed text lowercased
// and with non-identifier characters replaced by "_", kept short enough
// to stay a readable IRI local name.
func Mint(opts MintOptions, text string, spanOffset int, typeTag TypeTag, reading string) string {
	hash := opts.Hash
	if hash == nil {
		hash = DefaultHash
	}
	input := text + "|" + strconv.Itoa(spanOffset) + "|" + string(typeTag)
	if reading != "" {
		input += "|" + reading
	}
	digest := hash(input)
	if len(digest) > 8 {
		digest = digest[:8]
	}
	return "inst:" + slugLabel(text) + "_" + digest
}

// AlternativeIRI forms the `<base>_alt_<readingTag>` alternative IRI
// required by invariant I5.
func AlternativeIRI(base, readingTag string) string {
	return base + "_alt_" + slugLabel(readingTag)
}

// slugLabel lowercases text and replaces every run of non-alphanumeric
// characters with a single underscore, trimming leading/trailing
// underscores, so the result is a safe IRI local-name fragment.
func slugLabel(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevUnderscore := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "node"
	}
	if len(out) > 48 {
		out = out[:48]
	}
	return out
}

// Sanitize escapes angle brackets and quotes in every string value
// written into the graph, per spec §4.9's HTML-injection guard.
func Sanitize(s string) string {
	r := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}
