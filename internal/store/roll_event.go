package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// rollRepo implements RollRepo with ent's SQL builder.
type rollRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *rollRepo) AppendRoll(ctx context.Context, data RollEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	rolledAt := data.RolledAt
	if rolledAt.IsZero() {
		rolledAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(rollEventsTable).
		Columns("sequence", "session_id", "die_name", "sides", "value", "critical", "rolled_at").
		Values(seqNum, data.SessionID, data.DieName, data.Sides, data.Value, data.Critical, rolledAt.UTC().UnixNano()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save roll event: %w", err)
	}
	return nil
}

func (r *rollRepo) QueryRolls(ctx context.Context, opts QueryOpts) ([]RollEventRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(rollEventsTable)
	sel := b.Select(
		t.C("sequence"), t.C("session_id"), t.C("die_name"),
		t.C("sides"), t.C("value"), t.C("critical"), t.C("rolled_at"),
	).From(t)

	if opts.After > 0 {
		sel.Where(entsql.GT(t.C("sequence"), opts.After))
	}
	if opts.DieName != "" {
		sel.Where(entsql.EQ(t.C("die_name"), opts.DieName))
	}
	sel.OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query roll events: %w", err)
	}
	defer rows.Close()

	var records []RollEventRecord
	for rows.Next() {
		var (
			rec      RollEventRecord
			rolledAt int64
		)
		if err := rows.Scan(&rec.Sequence, &rec.SessionID, &rec.DieName,
			&rec.Sides, &rec.Value, &rec.Critical, &rolledAt); err != nil {
			return nil, fmt.Errorf("scan roll event: %w", err)
		}
		rec.RolledAt = time.Unix(0, rolledAt).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roll events: %w", err)
	}
	return records, nil
}

func (r *rollRepo) DieStats(ctx context.Context) ([]DieStat, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(rollEventsTable)
	query, args := b.Select(t.C("die_name"), t.C("sides"), t.C("value"), entsql.Count("*")).
		From(t).
		GroupBy(t.C("die_name"), t.C("sides"), t.C("value")).
		OrderBy(t.C("sides"), t.C("value")).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query die stats: %w", err)
	}
	defer rows.Close()

	var stats []DieStat
	index := make(map[string]int)
	for rows.Next() {
		var (
			name               string
			sides, value, hits int
		)
		if err := rows.Scan(&name, &sides, &value, &hits); err != nil {
			return nil, fmt.Errorf("scan die stats: %w", err)
		}

		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, DieStat{DieName: name, Sides: sides, Faces: make(map[int]int)})
		}
		st := &stats[i]
		st.Rolls += hits
		st.Sum += value * hits
		st.Faces[value] += hits
		if value == sides {
			st.Criticals += hits
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate die stats: %w", err)
	}
	return stats, nil
}
