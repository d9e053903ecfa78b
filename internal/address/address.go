// Package address splits and joins the free-text business addresses retailers
// enter at signup, and extracts US state codes from them.
package address

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	commaStateZip = regexp.MustCompile(`,\s*([A-Z]{2})\s+\d{5}(?:-\d{4})?\s*$`)
	stateZip      = regexp.MustCompile(`\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\s*$`)
	stateToken    = regexp.MustCompile(`\b([A-Z]{2})\b`)
	zipTail       = regexp.MustCompile(`(\d{5}(?:-\d{4})?)\s*$`)
)

// Address is a business address broken into its parts.
type Address struct {
	Street string `json:"street" valid:"required"`
	City   string `json:"city" valid:"required"`
	State  string `json:"state" valid:"required,stringlength(2|2)"`
	Zip    string `json:"zip" valid:"required"`
}

// ExtractState returns the two-letter state code of a free-text address. It
// tries a trailing ", XX 12345[-6789]", then a trailing "XX 12345[-6789]",
// then the last standalone two-letter uppercase token.
func ExtractState(addr string) (string, bool) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", false
	}
	if m := commaStateZip.FindStringSubmatch(addr); m != nil {
		return m[1], true
	}
	if m := stateZip.FindStringSubmatch(addr); m != nil {
		return m[1], true
	}
	if all := stateToken.FindAllStringSubmatch(addr, -1); len(all) > 0 {
		return all[len(all)-1][1], true
	}
	return "", false
}

// Parse splits "street, city, ST 12345" into its parts. Parts that cannot be
// found are left empty.
func Parse(addr string) Address {
	var a Address
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return a
	}

	parts := strings.Split(addr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	a.State, _ = ExtractState(addr)
	if m := zipTail.FindStringSubmatch(addr); m != nil {
		a.Zip = m[1]
	}

	switch len(parts) {
	case 1:
		a.Street = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(parts[0], a.Zip), a.State))
	case 2:
		a.Street = parts[0]
		a.City = stripStateZip(parts[1], a.State, a.Zip)
	default:
		a.Street = strings.Join(parts[:len(parts)-2], ", ")
		city := parts[len(parts)-2]
		last := parts[len(parts)-1]
		rest := stripStateZip(last, a.State, a.Zip)
		if rest != "" {
			city = city + ", " + rest
		}
		a.City = city
	}
	return a
}

func stripStateZip(s, state, zip string) string {
	s = strings.TrimSpace(s)
	if zip != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, zip))
	}
	if state != "" && strings.HasSuffix(s, state) {
		s = strings.TrimSpace(strings.TrimSuffix(s, state))
	}
	return s
}

// Format joins the parts back into the single-line form stored on the retailer.
func Format(a Address) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(a.Street))
	if city := strings.TrimSpace(a.City); city != "" {
		b.WriteString(", ")
		b.WriteString(city)
	}
	stateZip := strings.TrimSpace(fmt.Sprintf("%s %s", strings.ToUpper(strings.TrimSpace(a.State)), strings.TrimSpace(a.Zip)))
	if stateZip != "" {
		b.WriteString(", ")
		b.WriteString(stateZip)
	}
	return b.String()
}
