package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func validateAddress(a *domain.Address) error {
	var v domain.Validator
	v.Require("full_name", a.FullName)
	v.Require("phone", a.Phone)
	v.Require("address", a.Address)
	v.Require("city", a.City)
	v.Require("state", a.State)
	v.Require("pincode", a.Pincode)
	return v.Err()
}

func (s *addressService) AddAddress(ctx context.Context, a *domain.Address) error {
	if err := validateAddress(a); err != nil {
		return err
	}
	return s.addressRepo.Create(ctx, a)
}

func (s *addressService) UpdateAddress(ctx context.Context, a *domain.Address) error {
	if err := validateAddress(a); err != nil {
		return err
	}
	return s.addressRepo.Update(ctx, a)
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID int32) error {
	return s.addressRepo.Delete(ctx, addressID, userID)
}

func (s *addressService) ListAddresses(ctx context.Context, userID int32) ([]domain.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}
