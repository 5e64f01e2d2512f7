package catalog

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrMalformed marks a catalog body that does not match the expected shape.
var ErrMalformed = errors.New("malformed catalog response")

// Item is one catalog entry. ImageURL is empty when the API has no image.
type Item struct {
	ID       int64
	Title    string
	ImageURL string
}

// decodeCatalog reads {"data":[{mal_id,title,images:{jpg:{image_url}}}]}
// field by field. A body without a data array is malformed, so an empty
// result always means the API really returned no items.
func decodeCatalog(body []byte) ([]Item, error) {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return nil, errors.Wrap(ErrMalformed, "body is not an object")
	}

	var (
		items   []Item
		hasData bool
	)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "data" {
			return d.Skip()
		}
		if d.Next() != jx.Array {
			return errors.New("data is not an array")
		}
		hasData = true
		items = make([]Item, 0)
		return d.Arr(func(d *jx.Decoder) error {
			item, err := decodeItem(d)
			if err != nil {
				return errors.Wrapf(err, "data[%d]", len(items))
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s", err.Error())
	}
	if !hasData {
		return nil, errors.Wrap(ErrMalformed, "missing data field")
	}
	return items, nil
}

func decodeItem(d *jx.Decoder) (Item, error) {
	var (
		item  Item
		hasID bool
	)
	if d.Next() != jx.Object {
		return Item{}, errors.New("item is not an object")
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "mal_id":
			id, err := d.Int64()
			if err != nil {
				return errors.Wrap(err, "mal_id")
			}
			item.ID = id
			hasID = true
		case "title":
			title, err := optionalString(d)
			if err != nil {
				return errors.Wrap(err, "title")
			}
			item.Title = title
		case "images":
			imageURL, err := decodeImageURL(d)
			if err != nil {
				return errors.Wrap(err, "images")
			}
			item.ImageURL = imageURL
		default:
			return d.Skip()
		}
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	if !hasID {
		return Item{}, errors.New("missing mal_id")
	}
	return item, nil
}

// decodeImageURL extracts images.jpg.image_url. Any other shape is treated
// as "no image" rather than a broken item.
func decodeImageURL(d *jx.Decoder) (string, error) {
	var imageURL string
	if d.Next() != jx.Object {
		return "", d.Skip()
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "jpg" || d.Next() != jx.Object {
			return d.Skip()
		}
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "image_url" {
				return d.Skip()
			}
			v, err := optionalString(d)
			if err != nil {
				return err
			}
			imageURL = v
			return nil
		})
	})
	return imageURL, err
}

func optionalString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}
