// Package addressbook implements the address book manager.
//
// The Service holds the whole catalog in memory. Every mutating call
// validates its input, mutates the catalog and then saves it through the
// domain.CatalogStore before returning; reads never touch the store.
//
// Expected conditions (invalid field, unknown book or contact, duplicate
// name, unknown sort field) come back as errors for which domain.IsReported
// is true and leave the catalog unchanged. A *domain.StorageError from a
// save, and domain.ErrInvalidIndex, are fatal to the caller.
package addressbook
