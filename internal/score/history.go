package score

import (
	"database/sql"
	"encoding/json"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one finished performance of a track, keyed by the track's content
// hash.
type Run struct {
	Sum       string
	Score     float64
	MaxStreak int
	Counts    [4]int
}

// History persists runs in a local sqlite database.
type History struct {
	db *sql.DB
}

func (h *History) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists runs
	  (
		  id integer not null primary key,
		  sum text,
		  score real,
		  max_streak integer,
		  counts bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return err
	}

	h.db = db
	return nil
}

func (h *History) Deinit() {
	if nil != h.db {
		h.db.Close()
	}
}

func (h *History) Save(run Run) {
	if nil == h.db {
		return
	}
	counts, err := json.Marshal(run.Counts)
	if nil != err {
		log.Println("unable to marshal counts", err)
		return
	}
	_, err = h.db.Exec(
		"insert into runs(sum, score, max_streak, counts) values(?, ?, ?, ?)",
		run.Sum, run.Score, run.MaxStreak, counts,
	)
	if nil != err {
		log.Println("unable to save run", err)
	}
}

func (h *History) Load(sum string) []Run {
	runs := []Run{}
	if nil == h.db {
		return runs
	}
	rows, err := h.db.Query(
		"select sum, score, max_streak, counts from runs where sum = ?", sum,
	)
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load runs", err)
		return runs
	}
	defer rows.Close()
	for rows.Next() {
		var run Run
		var counts []byte
		rows.Scan(&run.Sum, &run.Score, &run.MaxStreak, &counts)
		if err := json.Unmarshal(counts, &run.Counts); nil != err {
			log.Println("unable to unmarshal run counts")
			continue
		}
		runs = append(runs, run)
	}
	return runs
}
