package fixture

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdamaC336/bay2/infrastructure/repository"
)

// Load grava o dataset pelo Storage. As senhas dos usuários são convertidas em
// hash bcrypt antes da gravação. Não há rollback: uma falha no meio deixa a carga parcial.
func Load(ctx context.Context, store repository.Storage, ds Dataset) error {
	for _, user := range ds.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("erro ao gerar hash da senha de %s: %w", user.Username, err)
		}
		user.Password = string(hash)

		if _, err := store.CreateUser(ctx, &user); err != nil {
			return err
		}
	}

	for _, data := range ds.Brands {
		if err := loadBrand(ctx, store, data); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":  len(ds.Users),
		"brands": len(ds.Brands),
	}).Info("Dados de exemplo carregados")

	return nil
}

func loadBrand(ctx context.Context, store repository.Storage, data BrandData) error {
	brand, err := store.CreateBrand(ctx, &data.Brand)
	if err != nil {
		return err
	}

	for _, revenue := range data.Revenue {
		revenue.BrandID = brand.ID
		if _, err := store.CreateRevenue(ctx, &revenue); err != nil {
			return err
		}
	}

	for _, spend := range data.AdSpend {
		spend.BrandID = brand.ID
		if _, err := store.CreateAdSpend(ctx, &spend); err != nil {
			return err
		}
	}

	for _, agent := range data.Agents {
		insert := agent.InsertAIAgent
		insert.BrandID = brand.ID

		created, err := store.CreateAIAgent(ctx, &insert)
		if err != nil {
			return err
		}

		// agentes nascem com custo zero
		if agent.Cost != 0 {
			if _, err := store.UpdateAIAgentCost(ctx, created.ID, agent.Cost); err != nil {
				return err
			}
		}
	}

	for _, ad := range data.Ads {
		ad.BrandID = brand.ID
		if _, err := store.CreateAdPerformance(ctx, &ad); err != nil {
			return err
		}
	}

	for _, task := range data.Tasks {
		task.BrandID = brand.ID
		if _, err := store.CreateOpsTask(ctx, &task); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"brand":   brand.Code,
		"revenue": len(data.Revenue),
		"adSpend": len(data.AdSpend),
		"agents":  len(data.Agents),
		"ads":     len(data.Ads),
		"tasks":   len(data.Tasks),
	}).Debug("Marca de exemplo carregada")

	return nil
}
