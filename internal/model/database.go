package model

// Database metadata constants for the JSON store.
const (
	DatabaseVersion = "2.0"
	DatabaseSource  = "eBook PDF extraction"
)

// Metadata describes the provenance of the store file.
type Metadata struct {
	Version string `json:"version"`
	Source  string `json:"source"`
}

// Database is the persisted store document: a flat list of entries plus
// metadata. The file is the sole persistence mechanism.
type Database struct {
	Entries  []Entry  `json:"entries"`
	Metadata Metadata `json:"metadata"`
}

// NewDatabase returns an empty database with current metadata.
func NewDatabase() *Database {
	return &Database{
		Entries:  []Entry{},
		Metadata: Metadata{Version: DatabaseVersion, Source: DatabaseSource},
	}
}

// Upsert merges an entry into the database. An existing entry with the same
// (city, state, campground name) identity is replaced at its original
// position; otherwise the entry is appended. Reports whether an existing
// entry was replaced.
func (db *Database) Upsert(entry Entry) bool {
	for i, existing := range db.Entries {
		if existing.SameIdentity(entry) {
			db.Entries[i] = entry
			return true
		}
	}
	db.Entries = append(db.Entries, entry)
	return false
}
