package sqlinline

const QStatsSummary = `--sql 1871d593-af71-4f85-9630-225c49eae080
select
  (select count(*) from campaigns)                  as total_campaigns,
  (select coalesce(sum(raised), 0) from campaigns)  as total_raised,
  (select count(*) from transactions)               as total_donations,
  (select count(*) from users)                      as total_users;
`

const QHealthCheck = `--sql be6b8d0e-647d-44f0-933d-54b6cea7e7b4
select 1;
`
