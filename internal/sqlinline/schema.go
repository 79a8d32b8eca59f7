package sqlinline

// Schema statements applied in order by cmd/migrate. Each is idempotent.
var Schema = []string{
	`--sql 94c3ad15-fb1b-4d66-8e6d-d3db83d423a4
create table if not exists users (
  id            uuid primary key,
  email         text not null unique,
  password_hash text not null,
  created_at    timestamptz not null default now()
);
`,
	`--sql d5ccb328-0ef5-4f3b-9677-f5b1552271c7
create table if not exists campaigns (
  id          uuid primary key,
  title       text not null,
  category    text not null,
  description text not null,
  target      bigint not null check (target > 0),
  raised      bigint not null default 0 check (raised >= 0),
  creator     uuid not null references users (id),
  created_at  timestamptz not null default now()
);
`,
	`--sql 74ea8bb8-4139-4392-9c57-406029344426
create table if not exists transactions (
  id          uuid primary key,
  campaign_id uuid not null references campaigns (id),
  amount      bigint not null check (amount > 0),
  donor       text not null,
  country     text not null default '',
  created_at  timestamptz not null default now()
);
create index if not exists transactions_campaign_time_idx
  on transactions (campaign_id, created_at desc);
`,
}
