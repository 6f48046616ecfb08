// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"bytes"
	"errors"
	"reflect"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/jinzhu/copier"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = opts.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}

var (
	genericTypeCache      = map[reflect.Type]reflect.Type{}
	genericTypeCacheMutex sync.RWMutex
)

// genericStructType returns a struct type with the same exported fields as the provided type,
// minus any embedded DecodeStoreCbor. The result has none of the original type's methods
func genericStructType(typeSrc reflect.Type) reflect.Type {
	genericTypeCacheMutex.RLock()
	ret, ok := genericTypeCache[typeSrc]
	genericTypeCacheMutex.RUnlock()
	if ok {
		return ret
	}
	srcTypeFields := []reflect.StructField{}
	for i := range typeSrc.NumField() {
		tmpField := typeSrc.Field(i)
		if tmpField.IsExported() && tmpField.Name != "DecodeStoreCbor" {
			srcTypeFields = append(srcTypeFields, tmpField)
		}
	}
	ret = reflect.StructOf(srcTypeFields)
	genericTypeCacheMutex.Lock()
	genericTypeCache[typeSrc] = ret
	genericTypeCacheMutex.Unlock()
	return ret
}

// EncodeGeneric encodes the specified object to CBOR without using the source object's
// MarshalCBOR() function
func EncodeGeneric(src any) ([]byte, error) {
	valueSrc := reflect.ValueOf(src)
	if valueSrc.Kind() != reflect.Pointer ||
		valueSrc.Elem().Kind() != reflect.Struct {
		return nil, errors.New("source must be a pointer to a struct")
	}
	tmpSrc := reflect.New(genericStructType(valueSrc.Elem().Type()))
	// Copy values from source object into temporary object
	if err := copier.Copy(tmpSrc.Interface(), src); err != nil {
		return nil, err
	}
	return Encode(tmpSrc.Interface())
}
