package world

import "strings"

// Paths into a server's file tree are flat lookup keys, not a real
// filesystem: the home directory is the bare sentinel "~", every other
// directory key ends in "/", and file keys carry no trailing slash.
// Resolution is string assembly against the current key; there is no
// tree walk.

const Home = "~"

// IsDirPath reports whether p is shaped like a directory key.
func IsDirPath(p string) bool {
	return p == Home || strings.HasSuffix(p, "/")
}

// EnsureDir returns p with a trailing slash, leaving home alone.
func EnsureDir(p string) string {
	if p == Home || strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// ChildDir resolves the directory key for child name under base. Home
// collapses to an empty prefix.
func ChildDir(base, name string) string {
	if base == Home {
		return EnsureDir(name)
	}
	return EnsureDir(EnsureDir(base) + name)
}

// ChildFile resolves the file key for name under base.
func ChildFile(base, name string) string {
	if base == Home {
		return name
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}

// Parent strips the last segment of a directory key, flooring at home.
func Parent(p string) string {
	if p == Home {
		return Home
	}

	trimmed := strings.TrimSuffix(p, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) <= 1 {
		return Home
	}

	return strings.Join(parts[:len(parts)-1], "/") + "/"
}
