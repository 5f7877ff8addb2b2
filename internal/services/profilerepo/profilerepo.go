package profilerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const schemaName = "discord_interactions_api"

// Profile is a Discord user's linked wallet record. Rows are written by the wallet
// verification site, this service only reads them.
type Profile struct {
	UserID            string      `boil:"user_id"`
	PublicKeyAddress  null.String `boil:"public_key_address"`
	IsWhitelistWinner bool        `boil:"is_whitelist_winner"`
	CreatedAt         time.Time   `boil:"created_at"`
	UpdatedAt         time.Time   `boil:"updated_at"`
}

// HasWallet reports whether the profile has a linked wallet address.
func (p *Profile) HasWallet() bool {
	return p.PublicKeyAddress.Valid && p.PublicKeyAddress.String != ""
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var getProfileQuery = fmt.Sprintf(`SELECT user_id, public_key_address, is_whitelist_winner, created_at, updated_at
FROM %s.profiles
WHERE user_id = $1`, schemaName)

// GetProfileByUserID retrieves the profile linked to a Discord user id.
// Returns ErrProfileNotFound when the user never linked a wallet.
func (r *Repository) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, richerrors.Error{
			ExternalMsg: "User id is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}

	var profile Profile
	err := queries.Raw(getProfileQuery, userID).Bind(ctx, r.db, &profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", ErrProfileNotFound, userID)
		}
		return nil, richerrors.Error{
			ExternalMsg: "Error getting profile",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return &profile, nil
}
