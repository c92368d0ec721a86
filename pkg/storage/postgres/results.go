package postgres

import (
	"context"
	"domainchecker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	checkResultsTable = "check_results"
)

// UpsertCheckResult writes result for its (domain, tld) pair, replacing every
// outcome column of an existing row. created_at of the first write is kept.
func (p *PgSQL) UpsertCheckResult(ctx context.Context, result domain.CheckResult) error {
	var row PgCheckResult
	if err := row.FromDomain(result); err != nil {
		return err
	}

	update := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	for _, col := range []string{
		"domain_name", "tld_extension", "fqdn",
		"is_available", "trust_score", "domain_age", "registrar", "registration",
		"checked_at", "batch_id", "error",
	} {
		update[col] = goqu.L("EXCLUDED." + col)
	}

	if _, err := p.Builder.Insert(checkResultsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain_id, tld_id", update)).
		Executor().ExecContext(ctx); err != nil {
		return wrapError(err, "could not upsert check result into pg")
	}

	return nil
}

// ownerResults selects the results whose domain belongs to ownerID and that
// match the extra conditions, ordered by domain name then extension.
func (p *PgSQL) ownerResults(ctx context.Context, ownerID domain.OwnerID, where ...exp.Expression) ([]domain.CheckResult, error) {
	owned := p.Builder.From(domainsTable).
		Select("id").
		Where(goqu.I("owner_id").Eq(uuid.UUID(ownerID)))
	where = append(where, goqu.I("domain_id").In(owned))

	var rows []PgCheckResult
	if err := p.Builder.From(checkResultsTable).
		Where(where...).
		Order(goqu.I("domain_name").Asc(), goqu.I("tld_extension").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not fetch check results from pg")
	}

	res := make([]domain.CheckResult, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}

	return res, nil
}

// CheckResultsByBatch returns the results last written by batchID.
func (p *PgSQL) CheckResultsByBatch(ctx context.Context,
	ownerID domain.OwnerID,
	batchID domain.BatchID) ([]domain.CheckResult, error) {
	return p.ownerResults(ctx, ownerID, goqu.I("batch_id").Eq(string(batchID)))
}

// CheckResultsByDomain returns every stored result of one domain.
func (p *PgSQL) CheckResultsByDomain(ctx context.Context,
	ownerID domain.OwnerID,
	domainID domain.DomainID) ([]domain.CheckResult, error) {
	return p.ownerResults(ctx, ownerID, goqu.I("domain_id").Eq(uuid.UUID(domainID)))
}

// CheckResultsByGroup returns the results of every domain in groupID.
func (p *PgSQL) CheckResultsByGroup(ctx context.Context,
	ownerID domain.OwnerID,
	groupID string) ([]domain.CheckResult, error) {
	inGroup := p.Builder.From(domainsTable).
		Select("id").
		Where(goqu.I("group_id").Eq(groupID))

	return p.ownerResults(ctx, ownerID, goqu.I("domain_id").In(inGroup))
}
