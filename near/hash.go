package near

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// CryptoHash is a 32-byte chain hash, rendered as base58 everywhere on the wire.
// https://nomicon.io/DataStructures/CryptoHash
type CryptoHash [32]byte

var (
	_ json.Marshaler   = (*CryptoHash)(nil)
	_ json.Unmarshaler = (*CryptoHash)(nil)

	_ sql.Scanner   = (*CryptoHash)(nil)
	_ driver.Valuer = (*CryptoHash)(nil)

	_ fmt.Stringer = (*CryptoHash)(nil)
)

func (x *CryptoHash) String() string {
	return base58.Encode(x[:])
}

func (x *CryptoHash) FromString(str string) (*CryptoHash, error) {
	d, err := base58.Decode(str)
	if err != nil {
		return nil, errors.Wrap(err, "decode base58")
	}
	if len(d) != 32 {
		return nil, fmt.Errorf("wrong hash length %d", len(d))
	}
	copy(x[0:32], d)
	return x, nil
}

func MustFromString(str string) *CryptoHash {
	h, err := new(CryptoHash).FromString(str)
	if err != nil {
		panic(errors.Wrapf(err, "%s", str))
	}
	return h
}

func (x *CryptoHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *CryptoHash) UnmarshalJSON(raw []byte) error {
	s := strings.Replace(string(raw), "\"", "", 2)
	if _, err := x.FromString(s); err != nil {
		return fmt.Errorf("cannot unmarshal %s to hash", s)
	}
	return nil
}

func (x *CryptoHash) UnmarshalText(data []byte) error {
	return x.UnmarshalJSON(data)
}

func (x *CryptoHash) Value() (driver.Value, error) {
	if x == nil {
		return nil, nil
	}
	none := true
	for _, i := range x {
		if i != 0 {
			none = false
			break
		}
	}
	if none {
		return nil, nil
	}
	return x[:], nil
}

func (x *CryptoHash) Scan(value interface{}) error {
	var i sql.NullString

	if value == nil {
		return nil
	}

	if err := i.Scan(value); err != nil {
		return err
	}
	if !i.Valid {
		return fmt.Errorf("error converting type %T into hash", value)
	}
	if l := len(i.String); l != 32 {
		return fmt.Errorf("wrong hash length %d", l)
	}

	copy(x[0:32], i.String)
	return nil
}

func Equal(x, y *CryptoHash) bool {
	if x != nil && y != nil && bytes.Equal(x[:], y[:]) {
		return true
	}
	return false
}
