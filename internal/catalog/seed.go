package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

// Seed migrates the catalog schema and loads the demo storefronts. The store
// is in-memory, so every boot starts from this fixture. Seller payment
// capabilities are deliberately uneven so multi-seller carts exercise the
// intersection rules, including the fully blocked combination.
func Seed(ctx context.Context, conn *gorm.DB) error {
	if err := conn.WithContext(ctx).AutoMigrate(&models.Seller{}, &models.Product{}); err != nil {
		return err
	}

	var count int64
	if err := conn.WithContext(ctx).Model(&models.Seller{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sellers, products := fixtures()
	if err := conn.WithContext(ctx).Create(&sellers).Error; err != nil {
		return err
	}
	return conn.WithContext(ctx).Create(&products).Error
}

func fixtures() ([]models.Seller, []models.Product) {
	everything := types.PaymentOptions{
		QRIS:            true,
		VirtualAccounts: types.VirtualAccounts{BCA: true, Mandiri: true, BRI: true, BNI: true},
		EWallets:        types.EWallets{GoPay: true, OVO: true, ShopeePay: true, DANA: true, LinkAja: true},
	}

	warungBuTini := models.Seller{
		ID:             uuid.MustParse("7b0d38ce-9a3a-4b71-8a4b-0f6cf78f2f01"),
		Name:           "Warung Bu Tini",
		City:           "Yogyakarta",
		Rating:         4.8,
		PaymentOptions: everything,
	}
	batikNusantara := models.Seller{
		ID:     uuid.MustParse("2f6ac5e3-64a7-40f0-b0ef-59a1a1a3bf02"),
		Name:   "Batik Nusantara",
		City:   "Solo",
		Rating: 4.6,
		PaymentOptions: types.PaymentOptions{
			QRIS:            true,
			VirtualAccounts: types.VirtualAccounts{BCA: true, Mandiri: true},
			EWallets:        types.EWallets{GoPay: true, DANA: true},
		},
	}
	// Bank transfer only, no QRIS and no e-wallets. Paired with an
	// e-wallet-only seller this produces the blocked cart.
	tokoElektronikJaya := models.Seller{
		ID:     uuid.MustParse("c91d2a77-11be-4f28-9c5a-3d9ac61c4d03"),
		Name:   "Toko Elektronik Jaya",
		City:   "Jakarta",
		Rating: 4.3,
		PaymentOptions: types.PaymentOptions{
			VirtualAccounts: types.VirtualAccounts{BCA: true, Mandiri: true, BRI: true, BNI: true},
		},
	}
	dapurMpokAti := models.Seller{
		ID:     uuid.MustParse("e4f9b7aa-8c1d-45f3-b2c7-6f2d8a9be604"),
		Name:   "Dapur Mpok Ati",
		City:   "Bekasi",
		Rating: 4.9,
		PaymentOptions: types.PaymentOptions{
			EWallets: types.EWallets{GoPay: true, OVO: true, ShopeePay: true},
		},
	}
	kriyaBali := models.Seller{
		ID:     uuid.MustParse("52a7d6b1-f03e-49d2-a6d4-7c58e2cb1e05"),
		Name:   "Kriya Bali",
		City:   "Denpasar",
		Rating: 4.7,
		PaymentOptions: types.PaymentOptions{
			QRIS:     true,
			EWallets: types.EWallets{OVO: true, DANA: true, LinkAja: true},
		},
	}

	sellers := []models.Seller{warungBuTini, batikNusantara, tokoElektronikJaya, dapurMpokAti, kriyaBali}

	products := []models.Product{
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000001"),
			SellerID:    warungBuTini.ID,
			Name:        "Kopi Gayo Arabica 250g",
			Description: "Single origin dari dataran tinggi Gayo, roast medium.",
			Category:    enums.ProductCategoryFood,
			Price:       75000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000002"),
			SellerID:    warungBuTini.ID,
			Name:        "Gula Aren Cair 500ml",
			Description: "Pemanis alami untuk kopi susu kekinian.",
			Category:    enums.ProductCategoryFood,
			Price:       38000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000003"),
			SellerID:    batikNusantara.ID,
			Name:        "Batik Tulis Parang 2m",
			Description: "Kain batik tulis motif parang, pewarna alami.",
			Category:    enums.ProductCategoryFashion,
			Price:       450000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000004"),
			SellerID:    batikNusantara.ID,
			Name:        "Kemeja Batik Cap Slimfit",
			Description: "Kemeja pria lengan pendek, bahan katun primisima.",
			Category:    enums.ProductCategoryFashion,
			Price:       185000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000005"),
			SellerID:    tokoElektronikJaya.ID,
			Name:        "Powerbank 20000mAh",
			Description: "Fast charging 22.5W, dual output USB-C dan USB-A.",
			Category:    enums.ProductCategoryElectronics,
			Price:       259000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000006"),
			SellerID:    dapurMpokAti.ID,
			Name:        "Rendang Daging Frozen 500g",
			Description: "Rendang masak 8 jam, tahan 3 bulan di freezer.",
			Category:    enums.ProductCategoryFood,
			Price:       98000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000007"),
			SellerID:    kriyaBali.ID,
			Name:        "Tas Rotan Bulat Handmade",
			Description: "Anyaman rotan asli Bali dengan tali kulit.",
			Category:    enums.ProductCategoryCraft,
			Price:       155000,
			IsActive:    true,
		},
		{
			ID:          uuid.MustParse("a1111111-0000-4000-8000-000000000008"),
			SellerID:    kriyaBali.ID,
			Name:        "Dupa Aromaterapi Cendana",
			Description: "Isi 40 batang, wangi cendana alami.",
			Category:    enums.ProductCategoryBeauty,
			Price:       42000,
			IsActive:    false,
		},
	}

	return sellers, products
}
