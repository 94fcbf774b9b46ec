package main

import (
	"boarding/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PartnerModel{},
		model.InviteModel{},
		model.BoardingSessionModel{},
		model.ContactModel{},
		model.EmailVerificationCodeModel{},
		model.MerchantModel{},
		model.MerchantUserModel{},
		model.CatalogProductModel{},
		model.FeeScheduleModel{},
		model.ProductPackageModel{},
		model.ProductPackageItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
