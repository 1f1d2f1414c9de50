// Package compendium defines the host-owned entities this module localizes:
// compendium folders and the directory panels that display them.
package compendium

import (
	"time"
)

// Folder kinds recognized by the host. The localization routines only
// ever touch KindCompendium folders.
const (
	KindCompendium = "Compendium"
)

// Folder is a host-managed grouping entity with a display name and
// namespaced auxiliary flags (scope -> key -> value).
type Folder struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	Kind      string                       `json:"kind"`
	Flags     map[string]map[string]string `json:"flags,omitempty"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

// GetID implements core.Entity
func (f *Folder) GetID() string {
	return f.ID
}

// GetType implements core.Entity
func (f *Folder) GetType() string {
	return "folder"
}

// Flag returns the value of a namespaced flag, if set.
func (f *Folder) Flag(scope, key string) (string, bool) {
	if f.Flags == nil {
		return "", false
	}
	scoped, ok := f.Flags[scope]
	if !ok {
		return "", false
	}
	v, ok := scoped[key]
	return v, ok
}

// SetFlag records a namespaced flag on the folder. It overwrites any
// existing value; write-once semantics are the caller's concern.
func (f *Folder) SetFlag(scope, key, value string) {
	if f.Flags == nil {
		f.Flags = make(map[string]map[string]string)
	}
	if f.Flags[scope] == nil {
		f.Flags[scope] = make(map[string]string)
	}
	f.Flags[scope][key] = value
}

// Clone returns a deep copy of the folder.
func (f *Folder) Clone() *Folder {
	out := *f
	if f.Flags != nil {
		out.Flags = make(map[string]map[string]string, len(f.Flags))
		for scope, kv := range f.Flags {
			scoped := make(map[string]string, len(kv))
			for k, v := range kv {
				scoped[k] = v
			}
			out.Flags[scope] = scoped
		}
	}
	return &out
}
