package world

import (
	"encoding/json"
	"fmt"
)

// Node is one entry in a server's file tree: either a directory listing
// (an ordered list of child names) or a file's text content. In JSON a
// directory is an array of strings and a file is a single string.
type Node struct {
	entries []string
	content string
	dir     bool
}

func FileNode(content string) Node {
	return Node{content: content}
}

func DirNode(entries ...string) Node {
	return Node{entries: entries, dir: true}
}

func (n Node) IsDir() bool {
	return n.dir
}

// Entries returns the directory listing in dataset order. Nil for files.
func (n Node) Entries() []string {
	if !n.dir {
		return nil
	}
	out := make([]string, len(n.entries))
	copy(out, n.entries)
	return out
}

// Content returns the file text. Empty for directories.
func (n Node) Content() string {
	if n.dir {
		return ""
	}
	return n.content
}

func (n *Node) UnmarshalJSON(b []byte) error {
	var entries []string
	if err := json.Unmarshal(b, &entries); err == nil {
		*n = DirNode(entries...)
		return nil
	}

	var content string
	if err := json.Unmarshal(b, &content); err != nil {
		return fmt.Errorf("node must be a string or a list of strings: %w", err)
	}

	*n = FileNode(content)
	return nil
}

func (n Node) MarshalJSON() ([]byte, error) {
	if n.dir {
		return json.Marshal(n.entries)
	}
	return json.Marshal(n.content)
}
