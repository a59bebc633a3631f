// Command receipts builds a few sample bills and prints their receipts.
package main

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/mmynk/grocerybill/internal/calculator"
	"github.com/mmynk/grocerybill/internal/models"
	"github.com/mmynk/grocerybill/pkg/logging"
)

func main() {
	logging.Setup(slog.LevelInfo)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, bill := range sampleBills() {
		if err := bill.PrintReceipt(out); err != nil {
			slog.Error("Failed to print receipt", "error", err)
			os.Exit(1)
		}
	}
}

func sampleBills() []calculator.Biller {
	clerk := models.NewEmployee("Alice")

	milk := models.NewItem("Milk", 3.00, 0.50)
	bread := models.NewItem("Bread", 2.00, 0.00)
	apples := models.NewItem("Apples", 4.20, 0.70)
	soap := models.NewItem("Soap", 5.00, 1.00)

	flat := calculator.NewBill(clerk)
	regular := calculator.NewDiscountBill(clerk, false)
	preferred := calculator.NewDiscountBill(clerk, true)
	for _, it := range []*models.Item{milk, bread, apples} {
		mustAdd(flat.Add(it))
		mustAdd(regular.Add(it))
		mustAdd(preferred.Add(it))
	}

	var soapLine models.BillLine
	soapLine.SetItem(soap)
	soapLine.SetQuantity(3)
	lines := []models.BillLine{
		soapLine,
		models.NewBillLine(bread, 2),
		models.NewBillLine(apples, 5),
	}

	quantity := calculator.NewBillV2(clerk)
	preferredV2 := calculator.NewDiscountBillV2(clerk, true)
	for _, l := range lines {
		mustAdd(quantity.Add(l))
		mustAdd(preferredV2.Add(l))
	}

	return []calculator.Biller{flat, regular, preferred, quantity, preferredV2}
}

func mustAdd(err error) {
	if err != nil {
		slog.Error("Failed to add entry", "error", err)
		os.Exit(1)
	}
}
