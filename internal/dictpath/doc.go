// Package dictpath resolves where the active speech engine keeps its user
// pronunciation dictionary. The Windows engine reads a binary user.dic from
// its roaming data directory; every other platform uses a JSON dictionary.
// The store layer infers the codec purely from the resolved path's suffix.
package dictpath
