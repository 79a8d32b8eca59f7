package sqlinline

const QInsertCampaign = `--sql 4805f998-9d25-400c-9684-7134b5c2cc6e
insert into campaigns (id, title, category, description, target, raised, creator, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::bigint, 0, $5::uuid, now())
returning id, created_at;
`

const QListCampaigns = `--sql 2ae9d451-d6fb-4a33-b52b-6fd40ad749f7
select id, title, category, description, target, raised, creator, created_at
from campaigns
order by created_at desc;
`

const QSelectCampaignByID = `--sql 07b97aab-4be9-468d-9b3a-3ea45257314c
select id, title, category, description, target, raised, creator, created_at
from campaigns
where id = $1::uuid
limit 1;
`
