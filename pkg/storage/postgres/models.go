package postgres

import (
	"database/sql"
	"domainchecker/pkg/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgDomain struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	OwnerID   uuid.UUID `db:"owner_id"`
	GroupID   string    `db:"group_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() domain.Domain {
	return domain.Domain{
		ID:        domain.DomainID(p.ID),
		OwnerID:   domain.OwnerID(p.OwnerID),
		GroupID:   p.GroupID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgDomain) FromDomain(d domain.Domain) {
	*p = PgDomain{
		ID:      uuid.UUID(d.ID),
		OwnerID: uuid.UUID(d.OwnerID),
		GroupID: d.GroupID,
		Name:    d.Name,
	}
}

type PgTLD struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Extension string    `db:"extension"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Hidden    bool      `db:"hidden"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTLD) ToDomain() domain.TLD {
	return domain.TLD{
		ID:        domain.TLDID(p.ID),
		Extension: p.Extension,
		Name:      p.Name,
		Category:  p.Category,
		Hidden:    p.Hidden,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgTLD) FromDomain(t domain.TLD) {
	*p = PgTLD{
		Extension: t.Extension,
		Name:      t.Name,
		Category:  t.Category,
		Hidden:    t.Hidden,
		SortOrder: t.SortOrder,
	}
}

type PgCheckResult struct {
	DomainID     uuid.UUID `db:"domain_id"`
	TLDID        uuid.UUID `db:"tld_id"`
	DomainName   string    `db:"domain_name"`
	TLDExtension string    `db:"tld_extension"`
	FQDN         string    `db:"fqdn"`

	IsAvailable  sql.NullBool   `db:"is_available"`
	TrustScore   sql.NullInt32  `db:"trust_score"`
	DomainAge    sql.NullInt32  `db:"domain_age"`
	Registrar    sql.NullString `db:"registrar"`
	Registration sql.NullString `db:"registration"`

	CheckedAt time.Time      `db:"checked_at"`
	BatchID   string         `db:"batch_id"`
	Error     sql.NullString `db:"error"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert,skipupdate"`
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}

	return sql.NullInt32{Int32: int32(*v), Valid: true} //nolint: gosec
}

func intPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)

	return &i
}

func (p *PgCheckResult) ToDomain() (*domain.CheckResult, error) {
	res := &domain.CheckResult{
		DomainID:     domain.DomainID(p.DomainID),
		TLDID:        domain.TLDID(p.TLDID),
		DomainName:   p.DomainName,
		TLDExtension: p.TLDExtension,
		FQDN:         p.FQDN,
		TrustScore:   intPtr(p.TrustScore),
		DomainAge:    intPtr(p.DomainAge),
		Registrar:    p.Registrar.String,
		CheckedAt:    p.CheckedAt,
		BatchID:      domain.BatchID(p.BatchID),
		Error:        p.Error.String,
	}
	if p.IsAvailable.Valid {
		v := p.IsAvailable.Bool
		res.IsAvailable = &v
	}
	if p.Registration.Valid {
		var reg domain.Registration
		if err := json.Unmarshal([]byte(p.Registration.String), &reg); err != nil {
			return nil, fmt.Errorf("could not unmarshal registration: %w", err)
		}
		res.Registration = &reg
	}

	return res, nil
}

func (p *PgCheckResult) FromDomain(r domain.CheckResult) error {
	*p = PgCheckResult{
		DomainID:     uuid.UUID(r.DomainID),
		TLDID:        uuid.UUID(r.TLDID),
		DomainName:   r.DomainName,
		TLDExtension: r.TLDExtension,
		FQDN:         r.FQDN,
		TrustScore:   nullInt(r.TrustScore),
		DomainAge:    nullInt(r.DomainAge),
		Registrar:    sql.NullString{String: r.Registrar, Valid: r.Registrar != ""},
		CheckedAt:    r.CheckedAt,
		BatchID:      string(r.BatchID),
		Error:        sql.NullString{String: r.Error, Valid: r.Error != ""},
	}
	if r.IsAvailable != nil {
		p.IsAvailable = sql.NullBool{Bool: *r.IsAvailable, Valid: true}
	}
	if r.Registration != nil {
		b, err := json.Marshal(r.Registration)
		if err != nil {
			return fmt.Errorf("could not marshal registration: %w", err)
		}
		p.Registration = sql.NullString{String: string(b), Valid: true}
	}

	return nil
}
