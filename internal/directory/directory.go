// Package directory keeps the contact records of the address book in memory and computes the
// upcoming birthdays.
package directory

import (
	"slices"
	"sync"

	"gitlab.com/dirk.krummacker/contact-book/internal/model"
)

// Directory maps contact names to their records. Iteration follows insertion order. A single
// mutex guards every operation, so a directory may be shared by concurrent callers.
type Directory struct {
	mu      sync.Mutex
	records map[string]*model.Record
	names   []string
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{records: make(map[string]*model.Record)}
}

// Add stores the record under its name. An existing record with the same name is replaced and
// keeps its position in the iteration order.
func (d *Directory) Add(record *model.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	name := record.Name().Render()
	if _, exists := d.records[name]; !exists {
		d.names = append(d.names, name)
	}
	d.records[name] = record
}

// Find returns the record stored under name.
func (d *Directory) Find(name string) (*model.Record, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	record, found := d.records[name]
	return record, found
}

// Delete removes the record stored under name. It returns false if there was none.
func (d *Directory) Delete(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.records[name]; !exists {
		return false
	}
	delete(d.records, name)
	d.names = slices.DeleteFunc(d.names, func(n string) bool { return n == name })
	return true
}

// Update calls fn with the record stored under name while holding the directory lock. Callers
// that share the directory between goroutines mutate records through Update.
func (d *Directory) Update(name string, fn func(record *model.Record) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	record, found := d.records[name]
	if !found {
		return &model.NotFoundError{Kind: model.KindName, Key: name}
	}
	return fn(record)
}

// Upsert calls fn with the record stored under name while holding the directory lock. If there is
// no such record, fn receives a new empty one, which is stored only if fn succeeds. Upsert reports
// whether the record was created.
func (d *Directory) Upsert(name string, fn func(record *model.Record) error) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if record, found := d.records[name]; found {
		return false, fn(record)
	}
	record, err := model.NewRecord(name)
	if err != nil {
		return false, err
	}
	key := record.Name().Render()
	if existing, found := d.records[key]; found {
		return false, fn(existing)
	}
	if err := fn(record); err != nil {
		return false, err
	}
	d.records[key] = record
	d.names = append(d.names, key)
	return true, nil
}

// View calls fn with the record stored under name while holding the directory lock, so that the
// record can be read consistently.
func (d *Directory) View(name string, fn func(record *model.Record)) error {
	return d.Update(name, func(record *model.Record) error {
		fn(record)
		return nil
	})
}

// Range calls fn for every record in insertion order while holding the directory lock. It stops
// when fn returns false. fn must not call other methods of the directory.
func (d *Directory) Range(fn func(record *model.Record) bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, name := range d.names {
		if !fn(d.records[name]) {
			return
		}
	}
}

// All returns the records in insertion order.
func (d *Directory) All() []*model.Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	records := make([]*model.Record, 0, len(d.names))
	for _, name := range d.names {
		records = append(records, d.records[name])
	}
	return records
}

// Len returns the number of records.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.names)
}
