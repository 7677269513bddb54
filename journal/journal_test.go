package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func TestKey(tst *testing.T) {
	k1 := Key("AUGGCUUAA")
	k2 := Key("AUGGCUUAA")
	k3 := Key("AUGGCU")
	if k1 != k2 {
		tst.Error("Key is not stable")
	}
	if k1 == k3 {
		tst.Error("Different sequences have the same key")
	}
	if len(k1) != 64 {
		tst.Error("Wrong key length:", len(k1))
	}
}

func TestSaveLoad(tst *testing.T) {
	fn := filepath.Join(tst.TempDir(), "journal.db")
	j, err := Open(fn)
	if err != nil {
		tst.Fatal("Error opening journal:", err)
	}

	key := Key("AUGGCUUAA")
	r, err := j.Load(key)
	if err != nil || r != nil {
		tst.Fatal("Unexpected record in empty journal:", r, err)
	}

	saved := &Record{
		Input:   "in.txt",
		Output:  "out.txt",
		Protein: "MA",
		Codons:  3,
		Stopped: true,
		Time:    time.Now().UTC(),
	}
	if err := j.Save(key, saved); err != nil {
		tst.Fatal("Error saving:", err)
	}
	if err := j.Close(); err != nil {
		tst.Fatal("Error closing:", err)
	}

	// records survive reopening
	j, err = Open(fn)
	if err != nil {
		tst.Fatal("Error reopening journal:", err)
	}
	defer j.Close()

	r, err = j.Load(key)
	if err != nil {
		tst.Fatal("Error loading:", err)
	}
	if r == nil {
		tst.Fatal("Record not found")
	}
	if r.Protein != "MA" || r.Codons != 3 || !r.Stopped || r.Input != "in.txt" {
		tst.Error("Wrong record:", r)
	}
	if !r.Time.Equal(saved.Time) {
		tst.Error("Wrong record time:", r.Time, saved.Time)
	}

	if r, _ := j.Load(Key("UUU")); r != nil {
		tst.Error("Record found for another key")
	}
}

func TestNilJournal(tst *testing.T) {
	var j *Journal
	if err := j.Save("k", &Record{}); err != nil {
		tst.Error("Nil journal save:", err)
	}
	if r, err := j.Load("k"); r != nil || err != nil {
		tst.Error("Nil journal load:", r, err)
	}
	if err := j.Close(); err != nil {
		tst.Error("Nil journal close:", err)
	}
}
