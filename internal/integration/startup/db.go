package startup

import (
	"bzmall/internal/repository/dao"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var db *gorm.DB

func InitTestDB() *gorm.DB {
	if db == nil {
		var err error
		db, err = gorm.Open(mysql.Open("root:root@tcp(localhost:13316)/bzmall"))
		if err != nil {
			panic(err)
		}
		err = dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	}
	return db
}
