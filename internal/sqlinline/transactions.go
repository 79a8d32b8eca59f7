package sqlinline

const QListTransactions = `--sql b4e13d15-cb96-4fd1-8e62-e18b44fec9ad
select id, campaign_id, amount, donor, country, created_at
from transactions
where campaign_id = $1::uuid
order by created_at desc;
`

// The two statements below always run inside one database transaction
// (see repo.DonationLedgerPG). The increment serializes concurrent donors
// on the campaign row, so the raised total never drops a donation.

const QIncrementRaised = `--sql ea07808a-4e77-455e-b76a-b6c619f6ac18
update campaigns
set raised = raised + $2::bigint
where id = $1::uuid
returning raised;
`

const QInsertTransaction = `--sql 5f4355b5-00a4-4a77-bf2a-2abd78ccd2fe
insert into transactions (id, campaign_id, amount, donor, country, created_at)
values (gen_random_uuid(), $1::uuid, $2::bigint, $3::text, $4::text, now())
returning id, created_at;
`
