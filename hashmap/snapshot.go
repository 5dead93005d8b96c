package hashmap

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MarshalMsg implements msgp.Marshaler
func (z Item) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 2
	o = msgp.AppendMapHeader(o, 2)
	o = msgp.AppendString(o, "key")
	o = msgp.AppendString(o, z.Key)
	o = msgp.AppendString(o, "value")
	o = msgp.AppendInt(o, z.Value)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Item) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "key":
			z.Key, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Key")
				return
			}
		case "value":
			z.Value, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Value")
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z Item) Msgsize() (s int) {
	s = 1 + 4 + msgp.StringPrefixSize + len(z.Key) + 6 + msgp.IntSize
	return
}

// MarshalMsg appends a MessagePack snapshot of the map to b:
// {"floor": int, "items": [{"key": string, "value": int}, ...]}.
// Options such as the key fold are not part of the snapshot.
func (hm *HashMap) MarshalMsg(b []byte) (o []byte, err error) {
	if hm.destroyed {
		return b, ErrDestroyed
	}

	o = msgp.Require(b, hm.Msgsize())
	o = msgp.AppendMapHeader(o, 2)
	o = msgp.AppendString(o, "floor")
	o = msgp.AppendInt(o, hm.Floor())
	o = msgp.AppendString(o, "items")
	o = msgp.AppendArrayHeader(o, uint32(hm.count))
	hm.Range(func(key string, val int) bool {
		o, err = Item{Key: key, Value: val}.MarshalMsg(o)
		return err == nil
	})
	if err != nil {
		err = msgp.WrapError(err, "Items")
	}
	return
}

// UnmarshalMsg replaces the contents of hm with the snapshot in bts. The
// entries are re-inserted one by one, so capacity follows the usual resize
// policy starting from the snapshot's floor. Options already set on hm are
// kept; a zero HashMap gets the default options.
func (hm *HashMap) UnmarshalMsg(bts []byte) (o []byte, err error) {
	if hm.destroyed {
		return bts, ErrDestroyed
	}

	var (
		field []byte
		floor int
		items []Item
	)
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "floor":
			floor, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Floor")
				return
			}
		case "items":
			var zb0002 uint32
			zb0002, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Items")
				return
			}
			// 每个元素至少占1字节，长度超过剩余字节数的输入一定不合法
			if int(zb0002) > len(bts) {
				err = msgp.WrapError(msgp.ErrShortBytes, "Items")
				return
			}
			items = make([]Item, zb0002)
			for i := range items {
				bts, err = items[i].UnmarshalMsg(bts)
				if err != nil {
					err = msgp.WrapError(err, "Items", i)
					return
				}
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}

	opt := hm.option
	if opt.fold == nil {
		opt = defaultOption()
	}
	if floor < 1 || floor > opt.maxCapacity {
		err = fmt.Errorf("hashmap: snapshot floor %d: %w", floor, ErrInvalidCapacity)
		return
	}

	restored := HashMap{floor: floor, option: opt}
	restored.init(floor, len(items))
	for _, item := range items {
		restored.Put(item.Key, item.Value)
	}
	*hm = restored
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (hm *HashMap) Msgsize() (s int) {
	s = 1 + 6 + msgp.IntSize + 6 + msgp.ArrayHeaderSize
	hm.Range(func(key string, val int) bool {
		s += Item{Key: key, Value: val}.Msgsize()
		return true
	})
	return
}

// Restore builds a new HashMap from a snapshot produced by MarshalMsg.
func Restore(bts []byte, opts ...Option) (*HashMap, error) {
	hm := &HashMap{option: defaultOption()}
	for _, opt := range opts {
		opt(&hm.option)
	}
	if _, err := hm.UnmarshalMsg(bts); err != nil {
		return nil, err
	}
	return hm, nil
}
