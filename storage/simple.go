package storage

import (
	"crypto"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// SimpleKV is the in-memory store backing a contract instance. It stands in
// for the host chain's state tree in tests and the demo binary.
type SimpleKV struct {
	Internal map[string]interface{}
}

func NewSimpleKV() *SimpleKV {
	return &SimpleKV{Internal: make(map[string]interface{})}
}

func (skv *SimpleKV) Get(key string) (interface{}, error) {
	value, ok := skv.Internal[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (skv *SimpleKV) Put(key string, value interface{}) error {
	skv.Internal[key] = value
	return nil
}

func (skv *SimpleKV) Del(key string) error {
	_, ok := skv.Internal[key]
	if !ok {
		return ErrKeyNotFound
	}

	delete(skv.Internal, key)
	return nil
}

func (skv *SimpleKV) String() string {
	ret := "{"
	for key, value := range skv.Internal {
		ret += fmt.Sprintf("%s->%v,", key, value)
	}
	return ret + "}"
}

// Hash digests the whole state; keys are walked in sorted order so two
// stores holding the same records hash the same.
func (skv *SimpleKV) Hash() string {
	keys := make([]string, 0, len(skv.Internal))
	for key := range skv.Internal {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	h := crypto.SHA256.New()
	for _, key := range keys {
		_, err := h.Write([]byte(key))
		if err != nil {
			panic(err)
		}

		bytes, err := json.Marshal(skv.Internal[key])
		if err != nil {
			panic(err)
		}
		_, err = h.Write(bytes)
		if err != nil {
			panic(err)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
