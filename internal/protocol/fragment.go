package protocol

import (
	"net/url"
	"strings"
)

// RoomFragment is the room context embedded in a share link: the part after
// '#', formatted as key=value pairs. Joining or creating a room rewrites it
// so a saved link restores the same room.
type RoomFragment struct {
	Room     string
	Password string
}

// ParseFragment extracts room and password from a fragment string. A leading
// '#' is tolerated. Malformed pairs are skipped rather than rejected, the
// way a browser client treats a hand-edited URL.
func ParseFragment(fragment string) RoomFragment {
	fragment = strings.TrimPrefix(fragment, "#")

	var f RoomFragment
	for _, pair := range strings.Split(fragment, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, err := url.QueryUnescape(k)
		if err != nil {
			continue
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		switch key {
		case "room":
			f.Room = val
		case "password":
			f.Password = val
		}
	}
	return f
}

// String formats the fragment for a share link.
func (f RoomFragment) String() string {
	return "room=" + url.QueryEscape(f.Room) + "&password=" + url.QueryEscape(f.Password)
}
