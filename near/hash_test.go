package near

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoHash_TypeKind(t *testing.T) {
	h := new(CryptoHash)
	for i := range h {
		h[i] = byte(i + 1)
	}

	v := reflect.ValueOf(h)
	vt := v.Type()

	assert.Equal(t, reflect.Pointer, vt.Kind())
	assert.Equal(t, reflect.Array, vt.Elem().Kind())
	assert.Equal(t, reflect.Uint8, vt.Elem().Elem().Kind())
	assert.True(t, vt.Implements(reflect.TypeOf((*driver.Valuer)(nil)).Elem()))

	r, err := v.Interface().(driver.Valuer).Value()
	assert.Nil(t, err)

	rb, ok := r.([]byte)
	assert.True(t, ok)
	assert.Equal(t, 32, len(rb))
}

func TestCryptoHash_FromString(t *testing.T) {
	var testCases = []*struct {
		raw [32]byte
	}{
		{raw: [32]byte{}},
		{raw: [32]byte{0x01}},
		{raw: [32]byte{
			0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
			0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
			0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
			0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
		}},
	}

	for _, c := range testCases {
		h := CryptoHash(c.raw)

		got, err := new(CryptoHash).FromString(h.String())
		assert.Nil(t, err)
		assert.True(t, Equal(&h, got))
	}

	// base58 of 32 zero bytes is 32 leading-zero digits
	zero := new(CryptoHash)
	assert.Equal(t, strings.Repeat("1", 32), zero.String())

	_, err := new(CryptoHash).FromString("abc")
	assert.NotNil(t, err)

	_, err = new(CryptoHash).FromString("0OIl")
	assert.NotNil(t, err)
}

func TestCryptoHash_JSON(t *testing.T) {
	h := new(CryptoHash)
	for i := range h {
		h[i] = byte(255 - i)
	}

	raw, err := json.Marshal(h)
	assert.Nil(t, err)
	assert.Equal(t, `"`+h.String()+`"`, string(raw))

	got := new(CryptoHash)
	assert.Nil(t, json.Unmarshal(raw, got))
	assert.True(t, Equal(h, got))

	assert.NotNil(t, json.Unmarshal([]byte(`"tooshort"`), new(CryptoHash)))
}

func TestCryptoHash_Scan(t *testing.T) {
	h := new(CryptoHash)
	for i := range h {
		h[i] = byte(i * 3)
	}

	v, err := h.Value()
	assert.Nil(t, err)

	got := new(CryptoHash)
	assert.Nil(t, got.Scan(v))
	assert.True(t, Equal(h, got))

	assert.NotNil(t, new(CryptoHash).Scan([]byte("short")))
}

func TestParseChainID(t *testing.T) {
	c, err := ParseChainID("mainnet")
	assert.Nil(t, err)
	assert.Equal(t, Mainnet, c)
	assert.Equal(t, "https://rpc.mainnet.near.org", c.RPCURL())
	assert.Equal(t, "near-lake-data-mainnet", c.LakeBucket())

	c, err = ParseChainID("testnet")
	assert.Nil(t, err)
	assert.Equal(t, Testnet, c)
	assert.Equal(t, "https://rpc.testnet.near.org", c.RPCURL())
	assert.Equal(t, "near-lake-data-testnet", c.LakeBucket())

	_, err = ParseChainID("betanet")
	assert.NotNil(t, err)
}
