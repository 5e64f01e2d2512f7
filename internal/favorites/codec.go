package favorites

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrMalformedRecord marks persisted bytes that are not a user record.
var ErrMalformedRecord = errors.New("malformed user record")

// encodeUser renders {"id":"...","favorites":[...]}.
func encodeUser(u User) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("id")
	e.Str(u.ID)
	e.FieldStart("favorites")
	e.ArrStart()
	for _, id := range u.Favorites {
		e.Int64(id)
	}
	e.ArrEnd()
	e.ObjEnd()
	return e.Bytes()
}

// decodeUser accepts a record with a non-empty string id and an optional
// integer favorites array. Duplicate ids are collapsed.
func decodeUser(data []byte) (User, error) {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return User{}, errors.Wrap(ErrMalformedRecord, "not an object")
	}

	var u User
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "id":
			if d.Next() != jx.String {
				return errors.New("id is not a string")
			}
			id, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "id")
			}
			u.ID = id
		case "favorites":
			if d.Next() == jx.Null {
				return d.Null()
			}
			return d.Arr(func(d *jx.Decoder) error {
				id, err := d.Int64()
				if err != nil {
					return errors.Wrap(err, "favorites")
				}
				u.Favorites = append(u.Favorites, id)
				return nil
			})
		default:
			return d.Skip()
		}
		return nil
	})
	if err != nil {
		return User{}, errors.Wrapf(ErrMalformedRecord, "%s", err.Error())
	}
	if strings.TrimSpace(u.ID) == "" {
		return User{}, errors.Wrap(ErrMalformedRecord, "missing id")
	}
	u.Favorites = dedupe(u.Favorites)
	return u, nil
}
