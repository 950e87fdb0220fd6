package gohjson

import "strconv"

type compoundState uint8

const (
	stateEmpty compoundState = iota // declared empty, already closed
	stateFirst                      // no child written yet
	stateRest
)

// Compound is the cursor for one open sequence or object. It is returned by
// the container methods of Serializer and must be ended exactly once.
type Compound struct {
	ser     *Serializer
	state   compoundState
	isMap   bool
	variant bool // wrapped in a {variant: ...} object
	index   int
	pending bool // a key was written and its value has not been
}

var (
	_ SeqSerializer    = (*Compound)(nil)
	_ MapSerializer    = (*Compound)(nil)
	_ StructSerializer = (*Compound)(nil)
)

func (c *Compound) SerializeElement(v Serializable) error {
	s := c.ser
	if c.state == stateEmpty {
		return Errorf("element written to a sequence declared empty")
	}
	if err := s.sinkErr(s.f.BeginArrayValue(s.w, c.state == stateFirst)); err != nil {
		return err
	}
	c.state = stateRest
	s.push(strconv.Itoa(c.index))
	c.index++
	if err := v.SerializeHjson(s); err != nil {
		return err
	}
	s.pop()
	return s.sinkErr(s.f.EndArrayValue(s.w))
}

// SerializeKey resolves k first and only then writes the entry's key, so a
// key that is not a string leaves no trace of the entry in the output.
func (c *Compound) SerializeKey(k Serializable) error {
	s := c.ser
	if c.state == stateEmpty {
		return Errorf("entry written to a map declared empty")
	}
	ks := &keySerializer{}
	if err := k.SerializeHjson(ks); err != nil {
		if e, ok := AsError(err); ok && e.Code == CodeKeyMustBeAString {
			return keyMustBeAString(s.pointer())
		}
		return err
	}
	if ks.emit == nil {
		return keyMustBeAString(s.pointer())
	}
	if err := s.sinkErr(s.f.BeginObjectKey(s.w, c.state == stateFirst)); err != nil {
		return err
	}
	c.state = stateRest
	if err := s.sinkErr(ks.write(s.f, s.w)); err != nil {
		return err
	}
	if err := s.sinkErr(s.f.EndObjectKey(s.w)); err != nil {
		return err
	}
	s.push(ks.text)
	c.pending = true
	return nil
}

func (c *Compound) SerializeValue(v Serializable) error {
	s := c.ser
	if !c.pending {
		return Errorf("map value written without a key")
	}
	c.pending = false
	if err := s.sinkErr(s.f.BeginObjectValue(s.w)); err != nil {
		return err
	}
	if err := v.SerializeHjson(s); err != nil {
		return err
	}
	s.pop()
	return s.sinkErr(s.f.EndObjectValue(s.w))
}

func (c *Compound) SerializeEntry(k, v Serializable) error {
	if err := c.SerializeKey(k); err != nil {
		return err
	}
	return c.SerializeValue(v)
}

// SerializeField writes a struct field as an entry with a string key.
func (c *Compound) SerializeField(key string, v Serializable) error {
	return c.SerializeEntry(String(key), v)
}

// End closes the container, then the variant wrapper if there is one.
func (c *Compound) End() error {
	s := c.ser
	if c.pending {
		return Errorf("map key %q has no value", s.path[len(s.path)-1])
	}
	if c.state != stateEmpty {
		end := s.f.EndArray
		if c.isMap {
			end = s.f.EndObject
		}
		if err := s.sinkErr(end(s.w)); err != nil {
			return err
		}
	}
	if c.variant {
		return s.closeVariant()
	}
	return nil
}
