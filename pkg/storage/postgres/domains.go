package postgres

import (
	"context"
	"domainchecker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	domainsTable = "domains"
)

func pgDomainsToDomain(rows []PgDomain) []domain.Domain {
	res := make([]domain.Domain, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].ToDomain())
	}

	return res
}

// DomainsByNames returns the domains of a group whose names are in names.
func (p *PgSQL) DomainsByNames(ctx context.Context, groupID string, names []string) ([]domain.Domain, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Where(
			goqu.I("group_id").Eq(groupID),
			goqu.I("name").In(names),
		).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch domains by names from pg")
	}

	return pgDomainsToDomain(rows), nil
}

// EnsureDomain inserts d unless a domain with the same group and name exists,
// then returns the stored record.
func (p *PgSQL) EnsureDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	var row PgDomain
	row.FromDomain(d)

	if _, err := p.Builder.Insert(domainsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, wrapError(err, "could not insert domain into pg")
	}

	found, err := p.Builder.From(domainsTable).
		Where(
			goqu.I("group_id").Eq(d.GroupID),
			goqu.I("name").Eq(d.Name),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not fetch domain from pg")
	}
	if !found {
		// only possible when a concurrent transaction deleted the row in between
		return nil, wrapError(errDomainVanished, "could not ensure domain")
	}

	res := row.ToDomain()

	return &res, nil
}

// DomainByID fetches a domain by its ID. Returns nil when not found.
func (p *PgSQL) DomainByID(ctx context.Context, ID domain.DomainID) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not fetch domain by id")
	}
	if !found {
		return nil, nil
	}

	res := row.ToDomain()

	return &res, nil
}
