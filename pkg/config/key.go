package config

import (
	"fmt"
	"strings"

	"github.com/xxrBear/build-your-own-git/pkg/errors"
)

// ErrInvalidKey is returned for dotted names that don't designate a key in a section
var ErrInvalidKey = errors.New("invalid configuration key")

// SplitKey splits a dotted name such as core.bare into section and key.
//
// A middle part designates a subsection: remote.origin.url is key url
// in section `remote "origin"`.
func SplitKey(name string) (section, key string, err error) {
	first, last := strings.Index(name, "."), strings.LastIndex(name, ".")
	if first <= 0 || last == len(name)-1 {
		return "", "", ErrInvalidKey.Wrap(fmt.Errorf("%q: expected section.key", name))
	}
	section, key = name[:first], name[last+1:]
	if first != last {
		section += ` "` + name[first+1:last] + `"`
	}
	return section, key, nil
}

// JoinKey is the reverse of SplitKey
func JoinKey(section, key string) string {
	if i := strings.Index(section, ` "`); i > 0 && strings.HasSuffix(section, `"`) {
		section = section[:i] + "." + section[i+2:len(section)-1]
	}
	return section + "." + key
}
