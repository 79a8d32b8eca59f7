package sqlinline

const QInsertUser = `--sql 4150e530-9fd1-4248-8129-5ba63f9c4500
insert into users (id, email, password_hash, created_at)
values (gen_random_uuid(), lower($1::text), $2::text, now())
returning id;
`

const QSelectUserByEmail = `--sql 3c3d5ebf-3fff-425a-a99a-7ee53a934ca9
select id, password_hash
from users
where email = lower($1::text)
limit 1;
`

const QSelectUserByID = `--sql 847a89b4-2c39-4870-aafd-4abed97fec49
select id, email, created_at
from users
where id = $1::uuid
limit 1;
`
