// Package handlers implements the REST endpoints. Every listing and CRUD
// response uses the uniform {success, data, error} envelope; unexpected
// failures surface as a 500 with a generic message.
package handlers

import "go.mongodb.org/mongo-driver/mongo/options"

// findOneAndUpdateAfter returns the options for update operations that
// respond with the post-update document.
func findOneAndUpdateAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
