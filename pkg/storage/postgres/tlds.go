package postgres

import (
	"context"
	"domainchecker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	tldsTable = "tlds"
)

// TLDsByExtensions returns the catalog entries for extensions ordered by sort order.
func (p *PgSQL) TLDsByExtensions(ctx context.Context, extensions []string) ([]domain.TLD, error) {
	if len(extensions) == 0 {
		return nil, nil
	}

	var rows []PgTLD
	if err := p.Builder.From(tldsTable).
		Where(goqu.I("extension").In(extensions)).
		Order(goqu.I("sort_order").Asc(), goqu.I("extension").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch tlds from pg")
	}

	res := make([]domain.TLD, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].ToDomain())
	}

	return res, nil
}

// EnsureTLD inserts tld unless its extension is already in the catalog and
// returns the stored entry. Existing entries are never modified.
func (p *PgSQL) EnsureTLD(ctx context.Context, tld domain.TLD) (*domain.TLD, error) {
	var row PgTLD
	row.FromDomain(tld)

	if _, err := p.Builder.Insert(tldsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, wrapError(err, "could not insert tld into pg")
	}

	found, err := p.Builder.From(tldsTable).
		Where(goqu.I("extension").Eq(tld.Extension)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not fetch tld from pg")
	}
	if !found {
		return nil, wrapError(errTLDVanished, "could not ensure tld")
	}

	res := row.ToDomain()

	return &res, nil
}
