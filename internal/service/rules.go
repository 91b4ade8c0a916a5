package service

import "store-visit/internal/domain"

// accessToStore enforces store scoping: a user may only act within the
// store they are affiliated with.
func accessToStore(u *domain.User, storeID int64) error {
	if !u.BelongsTo(storeID) {
		return domain.NewError(domain.KindDataValidation, "cannot create an order for another store")
	}
	return nil
}

// workerBelongs checks that the assigned worker is a member of the store.
// The store must have been loaded with its users.
func workerBelongs(store *domain.Store, workerID int64) error {
	if !store.HasWorker(workerID) {
		return domain.NewError(domain.KindDataValidation, "cannot create an order for a worker from another store")
	}
	return nil
}
