package backend

import (
	"context"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func (c *Client) Register(ctx context.Context, req entities.RegisterRequest) (*entities.AuthResponse, error) {
	var resp entities.AuthResponse
	if err := c.post(ctx, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req entities.LoginRequest) (*entities.AuthResponse, error) {
	var resp entities.AuthResponse
	if err := c.post(ctx, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context, token string) (*entities.User, error) {
	var user entities.User
	if err := c.get(ctx, "/auth/me", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req entities.UpdateProfileRequest) (*entities.User, error) {
	var user entities.User
	if err := c.put(ctx, "/auth/update-profile", token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, req entities.ChangePasswordRequest) error {
	return c.put(ctx, "/auth/change-password", token, req, nil)
}
