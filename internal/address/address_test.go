package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractState(t *testing.T) {
	tests := []struct {
		addr  string
		state string
		ok    bool
	}{
		{"123 Main St, Springfield, IL 62704", "IL", true},
		{"123 Main St, Springfield IL 62704", "IL", true},
		{"123 Main St", "", false},
		{"123 Main St, Austin, TX 78701", "TX", true},
		{"9 Elm Rd Portland OR 97201-1234", "OR", true},
		{"55 Ocean Ave, Miami FL", "FL", true},
		{"PO Box 12, NY, Buffalo", "NY", true},
		// the last-token fallback is best effort and takes any two capitals
		{"PO Box 5", "PO", true},
		{"somewhere nice", "", false},
		{"   ", "", false},
	}
	for _, tt := range tests {
		st, ok := ExtractState(tt.addr)
		assert.Equal(t, tt.ok, ok, tt.addr)
		assert.Equal(t, tt.state, st, tt.addr)
	}
}

func TestParse(t *testing.T) {
	a := Parse("123 Main St, Suite 4, Austin, TX 78701")
	assert.Equal(t, Address{Street: "123 Main St, Suite 4", City: "Austin", State: "TX", Zip: "78701"}, a)

	a = Parse("9 Elm Rd, Portland OR 97201-1234")
	assert.Equal(t, Address{Street: "9 Elm Rd", City: "Portland", State: "OR", Zip: "97201-1234"}, a)

	assert.Equal(t, Address{}, Parse(""))
}

func TestFormatRoundTrip(t *testing.T) {
	a := Address{Street: "1 Congress Ave", City: "Austin", State: "tx", Zip: "78702"}
	s := Format(a)
	assert.Equal(t, "1 Congress Ave, Austin, TX 78702", s)

	back := Parse(s)
	assert.Equal(t, "TX", back.State)
	assert.Equal(t, "Austin", back.City)
	assert.Equal(t, "1 Congress Ave", back.Street)
	assert.Equal(t, "78702", back.Zip)

	assert.Equal(t, "1 Congress Ave", Format(Address{Street: "1 Congress Ave"}))
}
